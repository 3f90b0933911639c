package usecase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"life-balance-planner/internal/document"
	repo "life-balance-planner/internal/document/repository"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation/analyzer"
	"life-balance-planner/pkg/agent"
)

func newID() string {
	return uuid.New().String()
}

func (uc *implUseCase) validateUpload(in *document.UploadInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return document.ErrEmptyName
	}
	if len(in.Content) == 0 {
		return document.ErrEmptyContent
	}
	if int64(len(in.Content)) > uc.cfg.MaxSize {
		return document.ErrTooLarge
	}
	if http.DetectContentType(in.Content) != agent.PDFContentType {
		return document.ErrNotPDF
	}

	m := &in.Metadata
	switch strings.ToLower(strings.TrimSpace(m.ConfidenceLevel)) {
	case "":
		m.ConfidenceLevel = DefaultConfidenceLevel
	case agent.ConfidenceLow, agent.ConfidenceMedium, agent.ConfidenceHigh:
		m.ConfidenceLevel = strings.ToLower(strings.TrimSpace(m.ConfidenceLevel))
	default:
		return document.ErrInvalidConfidence
	}
	if m.ModuleCoefficient < 0 {
		return document.ErrInvalidCoefficient
	}
	if m.ModuleCoefficient == 0 {
		m.ModuleCoefficient = DefaultModuleCoefficient
	}
	if m.TaskDeadline != "" {
		if _, err := time.Parse(agent.DateLayout, m.TaskDeadline); err != nil {
			return document.ErrInvalidDeadline
		}
	}
	return nil
}

// toAnalysis fills agent defaults and maps the answer onto domain types.
func toAnalysis(res *agent.Result) (*document.Analysis, error) {
	a := &document.Analysis{
		Recommendation:    res.Recommendation,
		Confidence:        DefaultConfidence,
		TopPriorityTask:   res.TopPriorityTask,
		UrgencyScore:      res.UrgencyScore,
		ActionableSteps:   res.ActionableSteps,
		EstimatedDuration: res.EstimatedDuration,
	}
	if a.Recommendation == "" {
		a.Recommendation = DefaultRecommendation
	}
	if res.Confidence != nil {
		a.Confidence = clamp01(*res.Confidence)
	}

	switch p := model.RecommendationPriority(res.Priority); p {
	case model.RecommendationHigh, model.RecommendationMedium, model.RecommendationLow:
		a.Priority = p
	default:
		if res.UrgencyScore != nil {
			a.Priority = analyzer.PriorityFromUrgency(*res.UrgencyScore)
		} else {
			a.Priority = model.RecommendationMedium
		}
	}

	if res.Reasoning != nil {
		a.Reasoning = &model.Reasoning{
			DeadlineProximity: res.Reasoning.DeadlineProximity,
			ModuleWeight:      res.Reasoning.ModuleWeight,
			WorkloadBalance:   res.Reasoning.WorkloadBalance,
		}
	}

	if len(res.ExtractedData) > 0 {
		var pd model.PlanningData
		if err := json.Unmarshal(res.ExtractedData, &pd); err != nil {
			return nil, fmt.Errorf("malformed planning data: %w", err)
		}
		a.PlanningData = &pd
	}
	return a, nil
}

func mapRepoErr(err error) error {
	if err == repo.ErrNotFound {
		return document.ErrDocumentNotFound
	}
	return err
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
