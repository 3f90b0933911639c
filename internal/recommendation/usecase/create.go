package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/document"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation"
	"life-balance-planner/internal/recommendation/advisor"
	"life-balance-planner/internal/recommendation/analyzer"
	repo "life-balance-planner/internal/recommendation/repository"
	"life-balance-planner/internal/task"
	"life-balance-planner/pkg/metrics"
)

func newID() string {
	return uuid.New().String()
}

// HandleDocument records the agent's advice for a processed document.
// Failed documents carry no analysis and are skipped.
func (uc *implUseCase) HandleDocument(ctx context.Context, doc model.UploadedDocument, a *document.Analysis) {
	if a == nil || doc.Status != model.DocumentProcessed {
		return
	}

	tasks, err := uc.openTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.HandleDocument: %v", err)
		return
	}

	planning := a.PlanningData
	if planning == nil {
		planning = doc.ExtractedData
	}
	analysis := uc.analyzer.Analyze(analyzer.Input{Planning: planning, Tasks: tasks, Now: uc.now()})

	confidence := a.Confidence
	rec := advisor.Advise(analysis, advisor.Supplied{
		Text:              a.Recommendation,
		Priority:          a.Priority,
		Confidence:        &confidence,
		ActionableSteps:   a.ActionableSteps,
		EstimatedDuration: a.EstimatedDuration,
		TopPriorityTask:   a.TopPriorityTask,
		Reasoning:         a.Reasoning,
	})
	rec.DocumentID = doc.ID

	if _, err := uc.store(ctx, rec); err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.HandleDocument: %s: %v", doc.ID, err)
	}
}

// Refresh analyzes the latest planning data against the open tasks. Either
// source failing, or no planning data yet, leaves the store untouched.
func (uc *implUseCase) Refresh(ctx context.Context) (model.AIRecommendation, error) {
	planning, err := uc.planning.LatestPlanningData(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Refresh: LatestPlanningData: %v", err)
		return model.AIRecommendation{}, fmt.Errorf("load planning data: %w", err)
	}
	if planning == nil {
		return model.AIRecommendation{}, recommendation.ErrNoPlanningData
	}

	tasks, err := uc.openTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Refresh: %v", err)
		return model.AIRecommendation{}, err
	}

	analysis := uc.analyzer.Analyze(analyzer.Input{Planning: planning, Tasks: tasks, Now: uc.now()})
	return uc.store(ctx, advisor.Advise(analysis, advisor.Supplied{}))
}

func (uc *implUseCase) openTasks(ctx context.Context) ([]model.Task, error) {
	open := false
	out, err := uc.tasks.List(ctx, task.ListInput{Completed: &open})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out.Tasks, nil
}

func (uc *implUseCase) store(ctx context.Context, rec model.AIRecommendation) (model.AIRecommendation, error) {
	rec.ID = uc.newID()
	rec.CreatedAt = uc.now()
	rec.Status = model.RecommendationPending

	created, err := uc.repo.CreateRecommendation(ctx, repo.CreateRecommendationOptions{Recommendation: rec})
	if err != nil {
		return model.AIRecommendation{}, fmt.Errorf("store recommendation: %w", err)
	}

	metrics.RecordRecommendation("created", 1)
	uc.publisher.Publish(ctx, advisory.RecommendationReady(created.Text))
	return created, nil
}
