package model

import "errors"

var (
	ErrBuildNotFound   = errors.New("build not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("not the build owner")
	ErrAlreadyLiked    = errors.New("build already liked")
	ErrNotLiked        = errors.New("build not liked")
)
