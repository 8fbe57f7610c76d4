package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pcstore-backend/internal/domains/course/model"
)

const courseColumns = `id, title, slug, description, level, published, created_at, updated_at`
const lessonColumns = `id, course_id, title, content, video_url, order_index, created_at, updated_at`
const enrollmentColumns = `id, user_id, course_id, completed_lesson_ids, enrolled_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var c model.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Slug, &c.Description, &c.Level, &c.Published,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanLesson(row pgx.Row) (*model.Lesson, error) {
	var l model.Lesson
	err := row.Scan(
		&l.ID, &l.CourseID, &l.Title, &l.Content, &l.VideoURL, &l.OrderIndex,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanEnrollment(row pgx.Row) (*model.Enrollment, error) {
	var e model.Enrollment
	err := row.Scan(
		&e.ID, &e.UserID, &e.CourseID, &e.CompletedLessonIDs, &e.EnrolledAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) ListCourses(ctx context.Context, publishedOnly bool) ([]*model.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY created_at DESC`, courseColumns)
	if publishedOnly {
		query = fmt.Sprintf(`SELECT %s FROM courses WHERE published = true ORDER BY created_at DESC`, courseColumns)
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	courses := []*model.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return courses, nil
}

func (r *postgresRepository) GetCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	c, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) GetCourseBySlug(ctx context.Context, slug string) (*model.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE slug = $1`, courseColumns)

	c, err := scanCourse(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get course by slug: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) CreateCourse(ctx context.Context, course *model.Course) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO courses (id, title, slug, description, level, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, course.ID, course.Title, course.Slug, course.Description, course.Level,
		course.Published, course.CreatedAt, course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateCourse(ctx context.Context, course *model.Course) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE courses
		SET title = $1, slug = $2, description = $3, level = $4, published = $5, updated_at = $6
		WHERE id = $7
	`, course.Title, course.Slug, course.Description, course.Level,
		course.Published, course.UpdatedAt, course.ID)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCourseNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCourseNotFound
	}
	return nil
}

func (r *postgresRepository) CourseSlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM courses WHERE slug = $1 AND id != $2)`,
			slug, *excludeID).Scan(&exists)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM courses WHERE slug = $1)`, slug).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ListLessons(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM lessons
		WHERE course_id = $1
		ORDER BY order_index ASC, created_at ASC
	`, lessonColumns)

	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	lessons := []model.Lesson{}
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return lessons, nil
}

func (r *postgresRepository) GetLesson(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	query := fmt.Sprintf(`SELECT %s FROM lessons WHERE id = $1`, lessonColumns)

	l, err := scanLesson(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return l, nil
}

func (r *postgresRepository) CreateLesson(ctx context.Context, lesson *model.Lesson) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lessons (id, course_id, title, content, video_url, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, lesson.ID, lesson.CourseID, lesson.Title, lesson.Content, lesson.VideoURL,
		lesson.OrderIndex, lesson.CreatedAt, lesson.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lesson: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateLesson(ctx context.Context, lesson *model.Lesson) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE lessons
		SET title = $1, content = $2, video_url = $3, order_index = $4, updated_at = $5
		WHERE id = $6
	`, lesson.Title, lesson.Content, lesson.VideoURL, lesson.OrderIndex,
		lesson.UpdatedAt, lesson.ID)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrLessonNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrLessonNotFound
	}
	return nil
}

func (r *postgresRepository) CountLessons(ctx context.Context, courseID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lessons WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) GetQuizByLesson(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error) {
	var q model.Quiz
	err := r.pool.QueryRow(ctx, `
		SELECT id, lesson_id, question, options, correct_index, created_at
		FROM quizzes WHERE lesson_id = $1
	`, lessonID).Scan(&q.ID, &q.LessonID, &q.Question, &q.Options, &q.CorrectIndex, &q.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	return &q, nil
}

func (r *postgresRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quizzes (id, lesson_id, question, options, correct_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, quiz.ID, quiz.LessonID, quiz.Question, quiz.Options, quiz.CorrectIndex, quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrQuizNotFound
	}
	return nil
}

func (r *postgresRepository) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	result, err := r.pool.Exec(ctx, `
		INSERT INTO enrollments (id, user_id, course_id, completed_lesson_ids, enrolled_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`, enrollment.ID, enrollment.UserID, enrollment.CourseID,
		enrollment.CompletedLessonIDs, enrollment.EnrolledAt, enrollment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert enrollment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAlreadyEnrolled
	}
	return nil
}

func (r *postgresRepository) GetEnrollment(ctx context.Context, userID, courseID uuid.UUID) (*model.Enrollment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM enrollments WHERE user_id = $1 AND course_id = $2
	`, enrollmentColumns)

	e, err := scanEnrollment(r.pool.QueryRow(ctx, query, userID, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotEnrolled
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.Enrollment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM enrollments WHERE user_id = $1 ORDER BY enrolled_at DESC
	`, enrollmentColumns)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*model.Enrollment{}
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return enrollments, nil
}

func (r *postgresRepository) UpdateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE enrollments SET completed_lesson_ids = $1, updated_at = $2 WHERE id = $3
	`, enrollment.CompletedLessonIDs, enrollment.UpdatedAt, enrollment.ID)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrNotEnrolled
	}
	return nil
}
