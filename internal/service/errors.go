package service

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthorized      = errors.New("user is not authorized")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostAuthor      = errors.New("you can only modify your own posts")
)
