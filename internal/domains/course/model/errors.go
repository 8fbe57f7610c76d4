package model

import "errors"

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrNotEnrolled        = errors.New("not enrolled in course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrInvalidLevel       = errors.New("invalid course level")
	ErrInvalidAnswerIndex = errors.New("answer index out of range")
	ErrSlugAlreadyExists  = errors.New("slug already exists")
)
