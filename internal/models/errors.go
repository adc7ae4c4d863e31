package models

import "errors"

var (
	ErrValidation         = errors.New("title and content are required")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrInvalidID          = errors.New("invalid blog ID")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrUploadFailed       = errors.New("upload failed")
)
