package usecase

import (
	"context"
	"errors"

	"life-balance-planner/internal/document"
	repo "life-balance-planner/internal/document/repository"
	"life-balance-planner/internal/model"
)

// Detail returns one document.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.UploadedDocument, error) {
	d, err := uc.repo.GetDocument(ctx, id)
	if err != nil {
		return model.UploadedDocument{}, mapRepoErr(err)
	}
	return d, nil
}

// List returns every document, newest upload first.
func (uc *implUseCase) List(ctx context.Context) ([]model.UploadedDocument, error) {
	docs, err := uc.repo.ListDocuments(ctx, repo.ListDocumentsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.List: %v", err)
		return nil, err
	}
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
	return docs, nil
}

// Delete removes a document. An analysis still running for it is discarded
// when it finishes.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteDocument(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

// MostRecent returns the document processed last. In-flight and failed
// documents are ignored.
func (uc *implUseCase) MostRecent(ctx context.Context) (model.UploadedDocument, error) {
	docs, err := uc.repo.ListDocuments(ctx, repo.ListDocumentsOptions{Status: model.DocumentProcessed})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.MostRecent: %v", err)
		return model.UploadedDocument{}, err
	}

	var best *model.UploadedDocument
	for i := range docs {
		d := &docs[i]
		if best == nil || d.ProcessedAt == nil || best.ProcessedAt == nil || !d.ProcessedAt.Before(*best.ProcessedAt) {
			best = d
		}
	}
	if best == nil {
		return model.UploadedDocument{}, document.ErrNoProcessedDoc
	}
	return *best, nil
}

// LatestPlanningData returns the planning data of the most recent processed
// document, or nil when there is none.
func (uc *implUseCase) LatestPlanningData(ctx context.Context) (*model.PlanningData, error) {
	d, err := uc.MostRecent(ctx)
	if errors.Is(err, document.ErrNoProcessedDoc) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.ExtractedData, nil
}

// Wait blocks until the document leaves processing, is deleted, or ctx ends.
func (uc *implUseCase) Wait(ctx context.Context, id string) (model.UploadedDocument, error) {
	uc.mu.Lock()
	done := uc.waiters[id]
	uc.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
			return model.UploadedDocument{}, ctx.Err()
		}
	}
	return uc.Detail(ctx, id)
}
