package model

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Level buckets courses by difficulty
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a learning-hub course. Lessons are ordered by OrderIndex.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Level       Level     `json:"level" db:"level"`
	Published   bool      `json:"published" db:"published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Lessons []Lesson `json:"lessons,omitempty" db:"-"`
}

// Lesson is one unit of course content
type Lesson struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CourseID   uuid.UUID `json:"course_id" db:"course_id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	VideoURL   *string   `json:"video_url" db:"video_url"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Quiz is a single-question check attached to a lesson. CorrectIndex is
// never serialized to clients.
type Quiz struct {
	ID           uuid.UUID `json:"id" db:"id"`
	LessonID     uuid.UUID `json:"lesson_id" db:"lesson_id"`
	Question     string    `json:"question" db:"question"`
	Options      []string  `json:"options" db:"options"`
	CorrectIndex int       `json:"-" db:"correct_index"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Enrollment tracks a user's progress through a course
type Enrollment struct {
	ID                 uuid.UUID   `json:"id" db:"id"`
	UserID             uuid.UUID   `json:"user_id" db:"user_id"`
	CourseID           uuid.UUID   `json:"course_id" db:"course_id"`
	CompletedLessonIDs []uuid.UUID `json:"completed_lesson_ids" db:"completed_lesson_ids"`
	EnrolledAt         time.Time   `json:"enrolled_at" db:"enrolled_at"`
	UpdatedAt          time.Time   `json:"updated_at" db:"updated_at"`
}

// Completed reports whether a lesson is already done
func (e *Enrollment) Completed(lessonID uuid.UUID) bool {
	for _, id := range e.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Progress is an enrollment plus derived completion stats
type Progress struct {
	Enrollment   *Enrollment `json:"enrollment"`
	TotalLessons int         `json:"total_lessons"`
	Completed    int         `json:"completed"`
	Percent      int         `json:"percent"`
}

// CourseRequest creates or replaces a course (staff)
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Published   bool   `json:"published"`
}

func (r CourseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Level, validation.Required),
	)
}

// LessonRequest creates or replaces a lesson (staff)
type LessonRequest struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	VideoURL   *string `json:"video_url"`
	OrderIndex int     `json:"order_index"`
}

func (r LessonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.OrderIndex, validation.Min(0)),
	)
}

// QuizRequest attaches a question to a lesson (staff)
type QuizRequest struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

func (r QuizRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Options, validation.Required, validation.Length(2, 6)),
		validation.Field(&r.CorrectIndex, validation.Min(0)),
	)
}

// QuizAnswerRequest submits an answer
type QuizAnswerRequest struct {
	AnswerIndex int `json:"answer_index"`
}

// QuizResult tells the learner whether they got it right
type QuizResult struct {
	Correct bool `json:"correct"`
}
