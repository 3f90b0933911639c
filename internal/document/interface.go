package document

import (
	"context"

	"life-balance-planner/internal/model"
)

// UseCase is the document ingestion pipeline. Upload returns at once and
// the document is analyzed in the background.
type UseCase interface {
	Upload(ctx context.Context, input UploadInput) (model.UploadedDocument, error)
	Detail(ctx context.Context, id string) (model.UploadedDocument, error)
	List(ctx context.Context) ([]model.UploadedDocument, error)
	Delete(ctx context.Context, id string) error

	// MostRecent returns the newest processed document.
	MostRecent(ctx context.Context) (model.UploadedDocument, error)
	// LatestPlanningData returns the planning data of MostRecent, or nil.
	LatestPlanningData(ctx context.Context) (*model.PlanningData, error)

	// Wait blocks until the document reaches a terminal state or is deleted.
	Wait(ctx context.Context, id string) (model.UploadedDocument, error)
	// Subscribe registers l for every completed analysis.
	Subscribe(l Listener)
	// Shutdown waits for in-flight analyses until ctx is done.
	Shutdown(ctx context.Context) error
}

// Listener is told about every document that reaches a terminal state.
// Analysis is nil when processing failed.
type Listener func(ctx context.Context, doc model.UploadedDocument, analysis *Analysis)
