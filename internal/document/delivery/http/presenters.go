package http

import (
	"encoding/json"
	"time"

	"life-balance-planner/internal/model"
)

type documentResp struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	URI           string              `json:"uri"`
	Size          int64               `json:"size"`
	UploadedAt    time.Time           `json:"uploadedAt"`
	ProcessedAt   *time.Time          `json:"processedAt,omitempty"`
	Status        string              `json:"status"`
	ExtractedData *model.PlanningData `json:"extractedData,omitempty"`
	AgentResponse json.RawMessage     `json:"aiResponse,omitempty"`
	Error         string              `json:"error,omitempty"`
}

func newDocumentResp(d model.UploadedDocument) documentResp {
	return documentResp{
		ID:            d.ID,
		Name:          d.Name,
		URI:           d.URI,
		Size:          d.Size,
		UploadedAt:    d.UploadedAt,
		ProcessedAt:   d.ProcessedAt,
		Status:        string(d.Status),
		ExtractedData: d.ExtractedData,
		AgentResponse: d.AgentResponse,
		Error:         d.ErrorMessage,
	}
}

type listResp struct {
	Documents []documentResp `json:"documents"`
	Total     int            `json:"total"`
}

func newListResp(docs []model.UploadedDocument) listResp {
	out := make([]documentResp, len(docs))
	for i, d := range docs {
		out[i] = newDocumentResp(d)
	}
	return listResp{Documents: out, Total: len(out)}
}
