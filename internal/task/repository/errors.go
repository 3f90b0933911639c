package repository

import "errors"

var (
	ErrNotFound    = errors.New("task record not found")
	ErrDuplicateID = errors.New("task id already exists")
	ErrMissingID   = errors.New("task id is required")
)
