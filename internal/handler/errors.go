package handler

import "errors"

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidFileID = errors.New("invalid file ID")
)
