package repository

import "errors"

var (
	ErrNotFound        = errors.New("recommendation not found")
	ErrDuplicateID     = errors.New("recommendation id already exists")
	ErrMissingID       = errors.New("recommendation id is required")
	ErrAlreadyResolved = errors.New("recommendation already resolved")
	ErrInvalidStatus   = errors.New("recommendation can only resolve to accepted or dismissed")
)
