package repository

import "errors"

var (
	ErrNotFound          = errors.New("document not found")
	ErrDuplicateID       = errors.New("document id already exists")
	ErrMissingID         = errors.New("document id is required")
	ErrInvalidTransition = errors.New("document status cannot change")
)
