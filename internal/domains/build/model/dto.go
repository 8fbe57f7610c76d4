package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SaveBuildRequest names and describes a build being saved from the builder
type SaveBuildRequest struct {
	SessionID   string  `json:"session_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r SaveBuildRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SessionID, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// UpdateBuildRequest edits a saved build's metadata
type UpdateBuildRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

func (r UpdateBuildRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
	)
}

// CommentRequest posts a comment on a public build
type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, 1000)),
	)
}

// Sort orders for the public build feed
const (
	SortNewest    = "newest"
	SortMostLiked = "most_liked"
)

// BuildFilter pages and sorts the public feed
type BuildFilter struct {
	Sort  string `form:"sort"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

func (f *BuildFilter) Normalize() {
	if f.Sort != SortMostLiked {
		f.Sort = SortNewest
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 50 {
		f.Limit = 20
	}
}

func (f *BuildFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
