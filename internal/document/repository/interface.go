package repository

import (
	"context"

	"life-balance-planner/internal/model"
)

// Repository stores uploaded documents.
type Repository interface {
	CreateDocument(ctx context.Context, opt CreateDocumentOptions) (model.UploadedDocument, error)
	GetDocument(ctx context.Context, id string) (model.UploadedDocument, error)
	// ListDocuments returns documents in upload order.
	ListDocuments(ctx context.Context, opt ListDocumentsOptions) ([]model.UploadedDocument, error)
	DeleteDocument(ctx context.Context, id string) error
	// CompleteDocument moves a processing document to a terminal status.
	// It fails with ErrInvalidTransition when the document is already terminal.
	CompleteDocument(ctx context.Context, opt CompleteDocumentOptions) (model.UploadedDocument, error)
}
