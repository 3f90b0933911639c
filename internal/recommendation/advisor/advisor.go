package advisor

import (
	"fmt"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation/analyzer"
)

// Estimated focus time per priority.
const (
	DurationHigh   = "2 hours"
	DurationMedium = "1.5 hours"
	DurationLow    = "1 hour"
)

// Supplied carries what the agent already decided. Set fields win over
// the generated ones.
type Supplied struct {
	Text              string
	Priority          model.RecommendationPriority
	Confidence        *float64
	ActionableSteps   []string
	EstimatedDuration string
	TopPriorityTask   string
	Reasoning         *model.Reasoning
}

// Advise turns an analysis into a pending recommendation. ID, CreatedAt and
// DocumentID are left for the store to fill.
func Advise(a analyzer.Analysis, s Supplied) model.AIRecommendation {
	priority := a.Priority
	if isPriority(s.Priority) {
		priority = s.Priority
	}
	confidence := a.Confidence
	if s.Confidence != nil {
		confidence = clamp01(*s.Confidence)
	}

	duration := s.EstimatedDuration
	if duration == "" {
		duration = EstimatedDuration(priority)
	}

	rec := model.AIRecommendation{
		Text:              s.Text,
		Priority:          priority,
		Confidence:        confidence,
		Status:            model.RecommendationPending,
		ActionableSteps:   s.ActionableSteps,
		EstimatedDuration: duration,
		TopPriorityTask:   s.TopPriorityTask,
		Reasoning:         s.Reasoning,
		Context: model.RecommendationContext{
			Module:           a.Module,
			Deadline:         a.Deadline,
			ExamDate:         a.ExamDate,
			Workload:         workload(a),
			ModuleImportance: a.Importance,
		},
	}
	if rec.Text == "" {
		rec.Text = Text(a)
	}
	if len(rec.ActionableSteps) == 0 {
		rec.ActionableSteps = Steps(a, duration)
	}
	if rec.TopPriorityTask == "" {
		rec.TopPriorityTask = a.Focus
	}
	if rec.Reasoning == nil {
		r := a.Reasoning
		rec.Reasoning = &r
	}
	return rec
}

// EstimatedDuration is the focus time suggested for a priority.
func EstimatedDuration(p model.RecommendationPriority) string {
	switch p {
	case model.RecommendationHigh:
		return DurationHigh
	case model.RecommendationMedium:
		return DurationMedium
	default:
		return DurationLow
	}
}

// Text is the one-paragraph recommendation for an analysis.
func Text(a analyzer.Analysis) string {
	if a.Focus == "" {
		return "You're all caught up. Use today to review upcoming material or recharge."
	}

	subject := fmt.Sprintf("%q", a.Focus)
	if a.Module != "" {
		subject = fmt.Sprintf("%q (%s)", a.Focus, a.Module)
	}
	text := fmt.Sprintf("Focus on %s today.", subject)

	if a.HasDeadline {
		switch a.DaysUntil {
		case 0:
			text += " It is due today."
		case 1:
			text += " It is due tomorrow."
		default:
			text += fmt.Sprintf(" It is due in %d days.", a.DaysUntil)
		}
	}
	if a.ExamDate != "" && a.FocusKind != analyzer.FocusExam {
		text += fmt.Sprintf(" Your related exam is on %s.", a.ExamDate)
	}
	if pct := weightPercent(a.Weight); pct > 0 {
		text += fmt.Sprintf(" It counts %d%% toward your final grade.", pct)
	}
	return text
}

// Steps lists what to do, in order.
func Steps(a analyzer.Analysis, duration string) []string {
	var steps []string
	switch a.FocusKind {
	case analyzer.FocusAssignment:
		steps = []string{
			fmt.Sprintf("Review the requirements for %s", a.Focus),
			fmt.Sprintf("Break %s into smaller parts", a.Focus),
			fmt.Sprintf("Work on %s for %s", a.Focus, duration),
		}
	case analyzer.FocusExam:
		steps = []string{
			fmt.Sprintf("List the topics covered by %s", a.Focus),
			"Review notes for your weakest topics",
			fmt.Sprintf("Do practice questions for %s", duration),
		}
	case analyzer.FocusTask:
		steps = []string{
			fmt.Sprintf("Start on %s", a.Focus),
			fmt.Sprintf("Work in focused blocks for %s", duration),
			fmt.Sprintf("Mark %s complete when done", a.Focus),
		}
	default:
		return []string{
			"Review your planning documents",
			"Add upcoming deadlines as tasks",
			"Schedule a wellness activity",
		}
	}

	if a.CapacityMatch == 0 {
		steps = append(steps, "Postpone low-priority tasks to free up time")
	}
	return append(steps, "Take a 30-minute break afterwards")
}

func workload(a analyzer.Analysis) string {
	switch {
	case a.CapacityMatch == 0:
		return "heavy"
	case a.CapacityMatch < 0.5:
		return "moderate"
	default:
		return "light"
	}
}

func isPriority(p model.RecommendationPriority) bool {
	return p == model.RecommendationHigh || p == model.RecommendationMedium || p == model.RecommendationLow
}

func weightPercent(w float64) int {
	if w <= 0 {
		return 0
	}
	if w <= 1 {
		w *= 100
	}
	return int(w + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
