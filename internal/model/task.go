package model

import "time"

// Category groups tasks for balance classification and scheduling.
type Category string

const (
	CategoryAcademics Category = "Academics"
	CategoryWork      Category = "Work"
	CategoryWellness  Category = "Wellness"
	CategorySocial    Category = "Social"
	// CategoryBreak only appears on generated schedule blocks.
	CategoryBreak Category = "Break"
)

// IsTaskCategory reports whether c may be assigned to a task.
func (c Category) IsTaskCategory() bool {
	switch c {
	case CategoryAcademics, CategoryWork, CategoryWellness, CategorySocial:
		return true
	}
	return false
}

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Rank orders priorities, higher is more important.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Effort bounds. Zero means the effort was not set.
const (
	MinEffort = 1
	MaxEffort = 5
)

// Task is a unit of work owned by the task store.
type Task struct {
	ID          string
	Title       string
	Category    Category
	Priority    Priority
	Completed   bool
	DueDate     string // free-form label, e.g. "Tomorrow" or "2024-12-20"
	Time        string // clock label, e.g. "10:00 AM"
	Duration    string // e.g. "2h"
	Effort      int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
