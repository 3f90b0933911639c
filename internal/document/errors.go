package document

import "errors"

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrNoProcessedDoc     = errors.New("no processed document")
	ErrEmptyName          = errors.New("document name is required")
	ErrEmptyContent       = errors.New("document content is empty")
	ErrNotPDF             = errors.New("document must be a PDF")
	ErrTooLarge           = errors.New("document exceeds the size limit")
	ErrInvalidConfidence  = errors.New("confidence level must be low, medium or high")
	ErrInvalidCoefficient = errors.New("module coefficient must not be negative")
	ErrInvalidDeadline    = errors.New("task deadline must be YYYY-MM-DD")
)
