package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/course/model"
)

// ServiceInterface defines learning-hub operations
type ServiceInterface interface {
	ListCourses(ctx context.Context) ([]*model.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*model.Course, error)

	Enroll(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error)
	GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.Progress, error)
	ListMyEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error)
	CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.Progress, error)

	GetQuiz(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error)
	SubmitQuizAnswer(ctx context.Context, lessonID uuid.UUID, req *model.QuizAnswerRequest) (*model.QuizResult, error)

	// Staff operations
	ListAllCourses(ctx context.Context) ([]*model.Course, error)
	CreateCourse(ctx context.Context, req *model.CourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req *model.CourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	CreateLesson(ctx context.Context, courseID uuid.UUID, req *model.LessonRequest) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, id uuid.UUID, req *model.LessonRequest) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	CreateQuiz(ctx context.Context, lessonID uuid.UUID, req *model.QuizRequest) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, id uuid.UUID) error
}
