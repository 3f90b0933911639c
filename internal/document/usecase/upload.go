package usecase

import (
	"context"
	"errors"
	"fmt"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/document"
	repo "life-balance-planner/internal/document/repository"
	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/agent"
	"life-balance-planner/pkg/metrics"
)

// Upload stores the document as processing and starts its analysis in the
// background. The returned document is the processing snapshot.
func (uc *implUseCase) Upload(ctx context.Context, input document.UploadInput) (model.UploadedDocument, error) {
	if err := uc.validateUpload(&input); err != nil {
		return model.UploadedDocument{}, err
	}

	id := uc.newID()
	doc, err := uc.repo.CreateDocument(ctx, repo.CreateDocumentOptions{
		Document: model.UploadedDocument{
			ID:         id,
			Name:       input.Name,
			URI:        fmt.Sprintf("upload://%s/%s", id, input.Name),
			Size:       int64(len(input.Content)),
			UploadedAt: uc.now(),
			Status:     model.DocumentProcessing,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "document.usecase.Upload: CreateDocument: %v", err)
		return model.UploadedDocument{}, fmt.Errorf("store document: %w", err)
	}

	done := make(chan struct{})
	uc.mu.Lock()
	uc.waiters[doc.ID] = done
	uc.mu.Unlock()

	uc.inflight.Add(1)
	go uc.process(context.WithoutCancel(ctx), doc, input, done)

	return doc, nil
}

// process runs one analysis to a terminal state. A document deleted in the
// meantime is left alone.
func (uc *implUseCase) process(ctx context.Context, doc model.UploadedDocument, input document.UploadInput, done chan struct{}) {
	defer uc.inflight.Done()
	defer func() {
		uc.mu.Lock()
		delete(uc.waiters, doc.ID)
		uc.mu.Unlock()
		close(done)
	}()

	runCtx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	res, err := uc.agent.Run(runCtx, agent.RunRequest{
		FileName: input.Name,
		Content:  input.Content,
		Metadata: agent.Metadata{
			StudentName:        uc.cfg.StudentName,
			NewTaskDescription: input.Metadata.NewTaskDescription,
			ConfidenceLevel:    input.Metadata.ConfidenceLevel,
			ModuleCoefficient:  input.Metadata.ModuleCoefficient,
			TaskDeadline:       input.Metadata.TaskDeadline,
		},
	})

	var analysis *document.Analysis
	if err == nil {
		analysis, err = toAnalysis(res)
	}

	opt := repo.CompleteDocumentOptions{ID: doc.ID, ProcessedAt: uc.now()}
	if err != nil {
		uc.l.Warnf(ctx, "document.usecase.process: %s: %v", doc.ID, err)
		opt.Status = model.DocumentError
		opt.ErrorMessage = err.Error()
		analysis = nil
	} else {
		opt.Status = model.DocumentProcessed
		opt.ExtractedData = analysis.PlanningData
		opt.AgentResponse = res.Raw
	}

	updated, cerr := uc.repo.CompleteDocument(ctx, opt)
	if errors.Is(cerr, repo.ErrNotFound) {
		uc.l.Debugf(ctx, "document.usecase.process: %s deleted before completion, result dropped", doc.ID)
		return
	}
	if cerr != nil {
		uc.l.Errorf(ctx, "document.usecase.process: CompleteDocument %s: %v", doc.ID, cerr)
		return
	}

	metrics.RecordDocument(string(updated.Status))
	if updated.Status == model.DocumentError {
		uc.publisher.Publish(ctx, advisory.DocumentFailed(updated.Name, updated.ErrorMessage))
	}

	uc.mu.Lock()
	listeners := append([]document.Listener(nil), uc.listeners...)
	uc.mu.Unlock()
	for _, l := range listeners {
		l(ctx, updated, analysis)
	}
}

// Subscribe registers l for every completed analysis.
func (uc *implUseCase) Subscribe(l document.Listener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, l)
}

// Shutdown waits for in-flight analyses until ctx is done.
func (uc *implUseCase) Shutdown(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		uc.inflight.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
