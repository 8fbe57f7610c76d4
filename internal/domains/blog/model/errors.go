package model

import "errors"

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrSlugAlreadyExists = errors.New("slug already exists")
)
