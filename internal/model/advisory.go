package model

import "time"

// AdvisoryKind tells subscribers why an advisory message was raised.
type AdvisoryKind string

const (
	AdvisoryScheduleSuggestion  AdvisoryKind = "schedule_suggestion"
	AdvisoryTaskCompleted       AdvisoryKind = "task_completed"
	AdvisoryOverloadWarning     AdvisoryKind = "overload_warning"
	AdvisoryScheduleGenerated   AdvisoryKind = "schedule_generated"
	AdvisoryRecommendationReady AdvisoryKind = "recommendation_ready"
	AdvisoryDocumentFailed      AdvisoryKind = "document_failed"
)

// AdvisoryMessage is an assistant-style message raised by a domain event.
type AdvisoryMessage struct {
	ID        string
	Kind      AdvisoryKind
	Text      string
	CreatedAt time.Time
}
