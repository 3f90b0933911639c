package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize decodes an agent body into a Result, resolving field aliases.
// The first alias present wins, in the order they are listed on wireResponse.
func Normalize(body []byte) (*Result, error) {
	clean := sanitizeJSONResponse(body)
	if len(clean) == 0 {
		return nil, ErrUnrecognizedResponse
	}

	var wire wireResponse
	if err := json.Unmarshal(clean, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if wire.Success != nil && !*wire.Success {
		reason := wire.Error
		if reason == "" {
			reason = deref(wire.Message)
		}
		return nil, &RejectedError{Reason: reason}
	}

	res := &Result{
		Recommendation:    firstString(wire.Recommendation, wire.FinalDecision, wire.Message),
		Priority:          strings.ToLower(strings.TrimSpace(deref(wire.Priority))),
		Confidence:        firstFloat(wire.Confidence, wire.ConfidenceLevel),
		ExtractedData:     firstObject(wire.ExtractedData, wire.PlanningData, topLevelPlanning(wire)),
		TopPriorityTask:   firstString(wire.TopPriorityTask, wire.TopPriorityTaskSnake),
		UrgencyScore:      firstFloat(wire.UrgencyScore, wire.UrgencyScoreSnake),
		Reasoning:         wire.Reasoning,
		ActionableSteps:   firstSlice(wire.ActionableSteps, wire.ActionableStepsSnake),
		EstimatedDuration: firstString(wire.EstimatedDuration, wire.EstimatedDurationSnake),
		Raw:               json.RawMessage(clean),
	}
	if res.Reasoning != nil && *res.Reasoning == (Reasoning{}) {
		res.Reasoning = nil
	}

	if res.IsEmpty() {
		return nil, ErrUnrecognizedResponse
	}
	return res, nil
}

// sanitizeJSONResponse strips markdown fences and any prose around the
// outermost JSON object.
func sanitizeJSONResponse(body []byte) []byte {
	s := bytes.TrimSpace(body)
	s = bytes.TrimPrefix(s, []byte("```json"))
	s = bytes.TrimPrefix(s, []byte("```"))
	s = bytes.TrimSuffix(s, []byte("```"))

	start := bytes.IndexByte(s, '{')
	end := bytes.LastIndexByte(s, '}')
	if start == -1 || end < start {
		return nil
	}
	return s[start : end+1]
}

// topLevelPlanning assembles planning data from lists sent at the top level.
// It needs at least one of classes, exams or assignments.
func topLevelPlanning(w wireResponse) json.RawMessage {
	if !isArray(w.Classes) && !isArray(w.Exams) && !isArray(w.Assignments) {
		return nil
	}
	lists := map[string]json.RawMessage{}
	for key, v := range map[string]json.RawMessage{
		"classes":     w.Classes,
		"exams":       w.Exams,
		"assignments": w.Assignments,
		"commitments": w.Commitments,
		"modules":     w.Modules,
	} {
		if isArray(v) {
			lists[key] = v
		}
	}
	out, err := json.Marshal(lists)
	if err != nil {
		return nil
	}
	return out
}

func isArray(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func firstString(values ...*string) string {
	for _, v := range values {
		if s := deref(v); s != "" {
			return s
		}
	}
	return ""
}

func firstFloat(values ...*flexFloat) *float64 {
	for _, v := range values {
		if v != nil && v.value != nil {
			return v.value
		}
	}
	return nil
}

func firstObject(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return trimmed
		}
	}
	return nil
}

func firstSlice(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
