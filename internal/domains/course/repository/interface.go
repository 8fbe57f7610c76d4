package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/course/model"
)

// RepositoryInterface defines learning-hub persistence operations
type RepositoryInterface interface {
	ListCourses(ctx context.Context, publishedOnly bool) ([]*model.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) error
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	CourseSlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	ListLessons(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson *model.Lesson) error
	UpdateLesson(ctx context.Context, lesson *model.Lesson) error
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	CountLessons(ctx context.Context, courseID uuid.UUID) (int, error)

	GetQuizByLesson(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error)
	CreateQuiz(ctx context.Context, quiz *model.Quiz) error
	DeleteQuiz(ctx context.Context, id uuid.UUID) error

	CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error
	GetEnrollment(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error)
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *model.Enrollment) error
}
