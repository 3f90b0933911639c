package memory

import (
	"context"

	repo "life-balance-planner/internal/document/repository"
	"life-balance-planner/internal/model"
)

// CreateDocument stores a new document.
func (r *implRepository) CreateDocument(ctx context.Context, opt repo.CreateDocumentOptions) (model.UploadedDocument, error) {
	if opt.Document.ID == "" {
		return model.UploadedDocument{}, repo.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[opt.Document.ID]; exists {
		return model.UploadedDocument{}, repo.ErrDuplicateID
	}
	r.docs[opt.Document.ID] = opt.Document
	r.order = append(r.order, opt.Document.ID)
	return opt.Document, nil
}

// GetDocument returns the document with id or ErrNotFound.
func (r *implRepository) GetDocument(ctx context.Context, id string) (model.UploadedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.docs[id]
	if !ok {
		return model.UploadedDocument{}, repo.ErrNotFound
	}
	return d, nil
}

// ListDocuments returns matching documents in upload order.
func (r *implRepository) ListDocuments(ctx context.Context, opt repo.ListDocumentsOptions) ([]model.UploadedDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.UploadedDocument, 0, len(r.order))
	for _, id := range r.order {
		d := r.docs[id]
		if opt.Status != "" && d.Status != opt.Status {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// DeleteDocument removes the document with id.
func (r *implRepository) DeleteDocument(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.docs, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CompleteDocument applies the single processing → terminal transition.
func (r *implRepository) CompleteDocument(ctx context.Context, opt repo.CompleteDocumentOptions) (model.UploadedDocument, error) {
	if !opt.Status.IsTerminal() {
		return model.UploadedDocument{}, repo.ErrInvalidTransition
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.docs[opt.ID]
	if !ok {
		return model.UploadedDocument{}, repo.ErrNotFound
	}
	if d.Status != model.DocumentProcessing {
		return model.UploadedDocument{}, repo.ErrInvalidTransition
	}

	processedAt := opt.ProcessedAt
	d.Status = opt.Status
	d.ProcessedAt = &processedAt
	d.ExtractedData = opt.ExtractedData
	d.AgentResponse = opt.AgentResponse
	d.ErrorMessage = opt.ErrorMessage
	r.docs[opt.ID] = d
	return d, nil
}
