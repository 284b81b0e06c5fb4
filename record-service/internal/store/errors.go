package store

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidUsername    = errors.New("username must not be empty")
	ErrWeakPassword       = errors.New("password must be at least 4 characters long")
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrUnknownAuthor      = errors.New("author account not found")
	ErrInvalidContent     = errors.New("message text must be between 1 and 255 characters")
	ErrNotFound           = errors.New("record not found")
)
