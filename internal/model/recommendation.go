package model

import "time"

// RecommendationPriority is the lower-case priority used by recommendations.
type RecommendationPriority string

const (
	RecommendationHigh   RecommendationPriority = "high"
	RecommendationMedium RecommendationPriority = "medium"
	RecommendationLow    RecommendationPriority = "low"
)

// RecommendationStatus moves from pending to accepted or dismissed once.
type RecommendationStatus string

const (
	RecommendationPending   RecommendationStatus = "pending"
	RecommendationAccepted  RecommendationStatus = "accepted"
	RecommendationDismissed RecommendationStatus = "dismissed"
)

// IsValid reports whether s is a known status.
func (s RecommendationStatus) IsValid() bool {
	return s == RecommendationPending || s == RecommendationAccepted || s == RecommendationDismissed
}

// RecommendationContext is the planning context a recommendation was made in.
type RecommendationContext struct {
	Module           string
	Deadline         string
	ExamDate         string
	Workload         string
	ModuleImportance Importance
}

// Reasoning explains how a priority was reached.
type Reasoning struct {
	DeadlineProximity string `json:"deadlineProximity,omitempty"`
	ModuleWeight      string `json:"moduleWeight,omitempty"`
	WorkloadBalance   string `json:"workloadBalance,omitempty"`
}

// AIRecommendation is an actionable suggestion produced by the pipeline.
type AIRecommendation struct {
	ID                string
	Text              string
	Priority          RecommendationPriority
	Confidence        float64
	Status            RecommendationStatus
	Context           RecommendationContext
	Reasoning         *Reasoning
	ActionableSteps   []string
	EstimatedDuration string
	TopPriorityTask   string
	DocumentID        string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}
