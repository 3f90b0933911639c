package schedule

import "errors"

var (
	ErrGenerationInProgress = errors.New("schedule generation already in progress")
	ErrEventNotFound        = errors.New("schedule event not found")
)
