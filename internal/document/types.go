package document

import (
	"life-balance-planner/internal/model"
)

// UploadInput is a document to analyze together with what the user told
// us about the task it belongs to.
type UploadInput struct {
	Name     string
	Content  []byte
	Metadata Metadata
}

// Metadata describes the task the document relates to.
type Metadata struct {
	NewTaskDescription string
	ConfidenceLevel    string  // low, medium or high
	ModuleCoefficient  float64 // module weight, defaults to 1
	TaskDeadline       string  // YYYY-MM-DD
}

// Analysis is the normalized agent answer for a processed document.
type Analysis struct {
	Recommendation    string
	Priority          model.RecommendationPriority
	Confidence        float64
	TopPriorityTask   string
	UrgencyScore      *float64
	Reasoning         *model.Reasoning
	ActionableSteps   []string
	EstimatedDuration string
	PlanningData      *model.PlanningData
}
