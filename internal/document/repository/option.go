package repository

import (
	"encoding/json"
	"time"

	"life-balance-planner/internal/model"
)

type CreateDocumentOptions struct {
	Document model.UploadedDocument
}

type ListDocumentsOptions struct {
	Status model.DocumentStatus
}

type CompleteDocumentOptions struct {
	ID            string
	Status        model.DocumentStatus
	ProcessedAt   time.Time
	ExtractedData *model.PlanningData
	AgentResponse json.RawMessage
	ErrorMessage  string
}
