package model

import (
	"encoding/json"
	"time"
)

// DocumentStatus is the ingestion state of an uploaded document.
// processing moves to processed or error exactly once.
type DocumentStatus string

const (
	DocumentProcessing DocumentStatus = "processing"
	DocumentProcessed  DocumentStatus = "processed"
	DocumentError      DocumentStatus = "error"
)

// IsTerminal reports whether no further transition is allowed.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentProcessed || s == DocumentError
}

// UploadedDocument is a planning document moving through ingestion.
type UploadedDocument struct {
	ID            string
	Name          string
	URI           string
	Size          int64
	UploadedAt    time.Time
	ProcessedAt   *time.Time
	Status        DocumentStatus
	ExtractedData *PlanningData
	AgentResponse json.RawMessage
	ErrorMessage  string
}
