package model

// PlanningData is the structured schedule information extracted from an
// uploaded document. Every list is optional.
type PlanningData struct {
	Classes     []ClassInfo      `json:"classes,omitempty"`
	Exams       []ExamInfo       `json:"exams,omitempty"`
	Assignments []AssignmentInfo `json:"assignments,omitempty"`
	Commitments []CommitmentInfo `json:"commitments,omitempty"`
	Modules     []ModuleInfo     `json:"modules,omitempty"`
}

// IsEmpty reports whether no list carries any entry.
func (p PlanningData) IsEmpty() bool {
	return len(p.Classes) == 0 && len(p.Exams) == 0 && len(p.Assignments) == 0 &&
		len(p.Commitments) == 0 && len(p.Modules) == 0
}

type ClassInfo struct {
	Name       string   `json:"name"`
	Time       string   `json:"time,omitempty"`
	Days       []string `json:"days,omitempty"`
	Location   string   `json:"location,omitempty"`
	Instructor string   `json:"instructor,omitempty"`
}

type ExamInfo struct {
	Name     string  `json:"name"`
	Date     string  `json:"date,omitempty"`
	Time     string  `json:"time,omitempty"`
	Module   string  `json:"module,omitempty"`
	Location string  `json:"location,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
}

type AssignmentInfo struct {
	Name        string  `json:"name"`
	Deadline    string  `json:"deadline,omitempty"`
	Module      string  `json:"module,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	Description string  `json:"description,omitempty"`
}

type CommitmentInfo struct {
	Name       string `json:"name"`
	Time       string `json:"time,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
	Category   string `json:"category,omitempty"`
}

type ModuleInfo struct {
	Code       string     `json:"code,omitempty"`
	Name       string     `json:"name"`
	Importance Importance `json:"importance,omitempty"`
	Credits    int        `json:"credits,omitempty"`
}

// Importance is the weight a module carries in prioritisation.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)
