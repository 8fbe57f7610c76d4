package model

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is a blog article. Unpublished posts are only visible to staff.
type Post struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Slug        string     `json:"slug" db:"slug"`
	Excerpt     *string    `json:"excerpt" db:"excerpt"`
	Content     string     `json:"content" db:"content"`
	CoverURL    *string    `json:"cover_url" db:"cover_url"`
	AuthorID    uuid.UUID  `json:"author_id" db:"author_id"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// PostRequest creates or replaces a post's content
type PostRequest struct {
	Title    string  `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  string  `json:"content"`
	CoverURL *string `json:"cover_url"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Excerpt, validation.Length(0, 500)),
		validation.Field(&r.Content, validation.Required),
	)
}

// PostFilter pages the post lists
type PostFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (f *PostFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 50 {
		f.Limit = 10
	}
}

func (f *PostFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
