package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/course/model"
	"pcstore-backend/internal/domains/course/repository"
	"pcstore-backend/internal/shared/utils"
)

type courseService struct {
	repo repository.RepositoryInterface
}

func NewCourseService(repo repository.RepositoryInterface) ServiceInterface {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]*model.Course, error) {
	return s.repo.ListCourses(ctx, true)
}

func (s *courseService) GetCourseBySlug(ctx context.Context, slug string) (*model.Course, error) {
	course, err := s.repo.GetCourseBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !course.Published {
		return nil, model.ErrCourseNotFound
	}

	lessons, err := s.repo.ListLessons(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Lessons = lessons
	return course, nil
}

func (s *courseService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error) {
	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.Published {
		return nil, model.ErrCourseNotFound
	}

	now := time.Now()
	enrollment := &model.Enrollment{
		ID:                 uuid.New(),
		UserID:             userID,
		CourseID:           courseID,
		CompletedLessonIDs: []uuid.UUID{},
		EnrolledAt:         now,
		UpdatedAt:          now,
	}
	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *courseService) GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.Progress, error) {
	enrollment, err := s.repo.GetEnrollment(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return s.progress(ctx, enrollment)
}

func (s *courseService) ListMyEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error) {
	return s.repo.ListEnrollments(ctx, userID)
}

// CompleteLesson marks a lesson done for the caller. Completing an already
// completed lesson is a no-op.
func (s *courseService) CompleteLesson(ctx context.Context, userID, lessonID uuid.UUID) (*model.Progress, error) {
	lesson, err := s.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.repo.GetEnrollment(ctx, userID, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	if !enrollment.Completed(lessonID) {
		enrollment.CompletedLessonIDs = append(enrollment.CompletedLessonIDs, lessonID)
		enrollment.UpdatedAt = time.Now()
		if err := s.repo.UpdateEnrollment(ctx, enrollment); err != nil {
			return nil, err
		}
	}
	return s.progress(ctx, enrollment)
}

func (s *courseService) GetQuiz(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error) {
	return s.repo.GetQuizByLesson(ctx, lessonID)
}

func (s *courseService) SubmitQuizAnswer(ctx context.Context, lessonID uuid.UUID, req *model.QuizAnswerRequest) (*model.QuizResult, error) {
	quiz, err := s.repo.GetQuizByLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if req.AnswerIndex < 0 || req.AnswerIndex >= len(quiz.Options) {
		return nil, model.ErrInvalidAnswerIndex
	}
	return &model.QuizResult{Correct: req.AnswerIndex == quiz.CorrectIndex}, nil
}

func (s *courseService) ListAllCourses(ctx context.Context) ([]*model.Course, error) {
	return s.repo.ListCourses(ctx, false)
}

func (s *courseService) CreateCourse(ctx context.Context, req *model.CourseRequest) (*model.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Level.IsValid() {
		return nil, model.ErrInvalidLevel
	}

	slug := utils.GenerateSlug(req.Title)
	exists, err := s.repo.CourseSlugExists(ctx, slug, nil)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, model.ErrSlugAlreadyExists
	}

	now := time.Now()
	course := &model.Course{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Level:       req.Level,
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, id uuid.UUID, req *model.CourseRequest) (*model.Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Level.IsValid() {
		return nil, model.ErrInvalidLevel
	}

	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := utils.GenerateSlug(req.Title)
	if slug != course.Slug {
		exists, err := s.repo.CourseSlugExists(ctx, slug, &id)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if exists {
			return nil, model.ErrSlugAlreadyExists
		}
	}

	course.Title = req.Title
	course.Slug = slug
	course.Description = req.Description
	course.Level = req.Level
	course.Published = req.Published
	course.UpdatedAt = time.Now()

	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCourse(ctx, id)
}

func (s *courseService) CreateLesson(ctx context.Context, courseID uuid.UUID, req *model.LessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	now := time.Now()
	lesson := &model.Lesson{
		ID:         uuid.New(),
		CourseID:   courseID,
		Title:      req.Title,
		Content:    req.Content,
		VideoURL:   req.VideoURL,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *courseService) UpdateLesson(ctx context.Context, id uuid.UUID, req *model.LessonRequest) (*model.Lesson, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lesson, err := s.repo.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.VideoURL = req.VideoURL
	lesson.OrderIndex = req.OrderIndex
	lesson.UpdatedAt = time.Now()

	if err := s.repo.UpdateLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *courseService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLesson(ctx, id)
}

func (s *courseService) CreateQuiz(ctx context.Context, lessonID uuid.UUID, req *model.QuizRequest) (*model.Quiz, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.CorrectIndex >= len(req.Options) {
		return nil, model.ErrInvalidAnswerIndex
	}
	if _, err := s.repo.GetLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		ID:           uuid.New(),
		LessonID:     lessonID,
		Question:     req.Question,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *courseService) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteQuiz(ctx, id)
}

func (s *courseService) progress(ctx context.Context, enrollment *model.Enrollment) (*model.Progress, error) {
	total, err := s.repo.CountLessons(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	completed := len(enrollment.CompletedLessonIDs)
	percent := 0
	if total > 0 {
		percent = completed * 100 / total
	}
	return &model.Progress{
		Enrollment:   enrollment,
		TotalLessons: total,
		Completed:    completed,
		Percent:      percent,
	}, nil
}
