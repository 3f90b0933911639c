package repository

import "errors"

var ErrNotFound = errors.New("schedule event not found")
