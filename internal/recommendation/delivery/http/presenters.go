package http

import (
	"math"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation"
)

type contextResp struct {
	Module           string `json:"module,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
	ExamDate         string `json:"examDate,omitempty"`
	Workload         string `json:"workload,omitempty"`
	ModuleImportance string `json:"moduleImportance,omitempty"`
}

type recommendationResp struct {
	ID                string           `json:"id"`
	Recommendation    string           `json:"recommendation"`
	Priority          string           `json:"priority"`
	Confidence        float64          `json:"confidence"`
	Status            string           `json:"status"`
	Context           contextResp      `json:"context"`
	Reasoning         *model.Reasoning `json:"reasoning,omitempty"`
	ActionableSteps   []string         `json:"actionableSteps"`
	EstimatedDuration string           `json:"estimatedDuration"`
	TopPriorityTask   string           `json:"topPriorityTask,omitempty"`
	DocumentID        string           `json:"documentId,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	ResolvedAt        *time.Time       `json:"resolvedAt,omitempty"`
}

func newRecommendationResp(r model.AIRecommendation) recommendationResp {
	steps := r.ActionableSteps
	if steps == nil {
		steps = []string{}
	}
	return recommendationResp{
		ID:             r.ID,
		Recommendation: r.Text,
		Priority:       string(r.Priority),
		Confidence:     r.Confidence,
		Status:         string(r.Status),
		Context: contextResp{
			Module:           r.Context.Module,
			Deadline:         r.Context.Deadline,
			ExamDate:         r.Context.ExamDate,
			Workload:         r.Context.Workload,
			ModuleImportance: string(r.Context.ModuleImportance),
		},
		Reasoning:         r.Reasoning,
		ActionableSteps:   steps,
		EstimatedDuration: r.EstimatedDuration,
		TopPriorityTask:   r.TopPriorityTask,
		DocumentID:        r.DocumentID,
		CreatedAt:         r.CreatedAt,
		ResolvedAt:        r.ResolvedAt,
	}
}

type listResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
	Total           int                  `json:"total"`
}

func newListResp(recs []model.AIRecommendation) listResp {
	out := make([]recommendationResp, len(recs))
	for i, r := range recs {
		out[i] = newRecommendationResp(r)
	}
	return listResp{Recommendations: out, Total: len(out)}
}

type statsResp struct {
	Total             int     `json:"total"`
	Accepted          int     `json:"accepted"`
	Dismissed         int     `json:"dismissed"`
	Pending           int     `json:"pending"`
	AverageConfidence float64 `json:"averageConfidence"`
}

func newStatsResp(s recommendation.Stats) statsResp {
	return statsResp{
		Total:             s.Total,
		Accepted:          s.Accepted,
		Dismissed:         s.Dismissed,
		Pending:           s.Pending,
		AverageConfidence: math.Round(s.AverageConfidence*100) / 100,
	}
}
