package agent

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Config configures the agent client.
type Config struct {
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return ErrInvalidURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Metadata is the other_data envelope sent alongside the file.
type Metadata struct {
	StudentName        string  `json:"student_name"`
	NewTaskDescription string  `json:"new_task_description"`
	ConfidenceLevel    string  `json:"confidence_level"`
	ModuleCoefficient  float64 `json:"module_coefficient"`
	TaskDeadline       string  `json:"task_deadline"`
	CurrentDate        string  `json:"current_date"`
}

// RunRequest is one document submission.
type RunRequest struct {
	FileName string
	Content  []byte
	Metadata Metadata
}

// Reasoning is the agent's explanation of its priority.
type Reasoning struct {
	DeadlineProximity string `json:"deadlineProximity,omitempty"`
	ModuleWeight      string `json:"moduleWeight,omitempty"`
	WorkloadBalance   string `json:"workloadBalance,omitempty"`
}

// Result is the agent response with every alias resolved.
// Optional numbers are nil when the agent did not send them.
type Result struct {
	Recommendation    string
	Priority          string
	Confidence        *float64
	ExtractedData     json.RawMessage
	TopPriorityTask   string
	UrgencyScore      *float64
	Reasoning         *Reasoning
	ActionableSteps   []string
	EstimatedDuration string

	// Raw is the body as received, after sanitizing.
	Raw json.RawMessage
}

// IsEmpty reports whether no recognizable field was present.
func (r Result) IsEmpty() bool {
	return r.Recommendation == "" && r.Priority == "" && r.Confidence == nil &&
		len(r.ExtractedData) == 0 && r.TopPriorityTask == "" && r.UrgencyScore == nil &&
		r.Reasoning == nil && len(r.ActionableSteps) == 0 && r.EstimatedDuration == ""
}

// wireResponse lists every field name the agent is known to use.
type wireResponse struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`

	Recommendation *string `json:"recommendation"`
	FinalDecision  *string `json:"final_decision"`
	Message        *string `json:"message"`

	Priority *string `json:"priority"`

	Confidence      *flexFloat `json:"confidence"`
	ConfidenceLevel *flexFloat `json:"confidenceLevel"`

	ExtractedData json.RawMessage `json:"extractedData"`
	PlanningData  json.RawMessage `json:"planning_data"`

	// Planning lists sent at the top level instead of inside extractedData.
	Classes     json.RawMessage `json:"classes"`
	Exams       json.RawMessage `json:"exams"`
	Assignments json.RawMessage `json:"assignments"`
	Commitments json.RawMessage `json:"commitments"`
	Modules     json.RawMessage `json:"modules"`

	TopPriorityTask      *string `json:"topPriorityTask"`
	TopPriorityTaskSnake *string `json:"top_priority_task"`

	UrgencyScore      *flexFloat `json:"urgencyScore"`
	UrgencyScoreSnake *flexFloat `json:"urgency_score"`

	Reasoning *Reasoning `json:"reasoning"`

	ActionableSteps      []string `json:"actionableSteps"`
	ActionableStepsSnake []string `json:"actionable_steps"`

	EstimatedDuration      *string `json:"estimatedDuration"`
	EstimatedDurationSnake *string `json:"estimated_duration"`
}

// flexFloat accepts a JSON number or a numeric string. Anything else
// decodes as absent rather than failing the whole response.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64); perr == nil {
			f.value = &parsed
		}
	}
	return nil
}
