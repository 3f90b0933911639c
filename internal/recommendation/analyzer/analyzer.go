package analyzer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/datemath"
)

// Focus kinds.
const (
	FocusAssignment = "assignment"
	FocusExam       = "exam"
	FocusTask       = "task"
	FocusNone       = ""
)

// noDeadline stands in for days-until when nothing is due.
const noDeadline = math.MaxInt32

// Input is what a priority analysis looks at.
type Input struct {
	Planning *model.PlanningData
	Tasks    []model.Task
	Now      time.Time
}

// Analysis is the outcome of picking what to focus on next.
type Analysis struct {
	Focus       string
	FocusKind   string
	Module      string
	Deadline    string
	ExamDate    string
	DaysUntil   int
	HasDeadline bool
	Weight      float64

	Importance    model.Importance
	OpenTasks     int
	CapacityMatch float64
	Urgency       float64
	Confidence    float64
	Priority      model.RecommendationPriority
	Reasoning     model.Reasoning
}

// Analyzer ranks planning items against the current workload.
type Analyzer struct {
	parser *datemath.Parser
}

// New creates an Analyzer resolving dates with parser.
func New(parser *datemath.Parser) *Analyzer {
	return &Analyzer{parser: parser}
}

type candidate struct {
	name     string
	kind     string
	module   string
	label    string
	days     int
	weight   float64
	priority int
}

// Analyze picks the nearest upcoming assignment or exam. With none it falls
// back to the most important open task.
func (a *Analyzer) Analyze(in Input) Analysis {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	open := openTasks(in.Tasks)
	out := Analysis{
		OpenTasks:     len(open),
		CapacityMatch: CapacityMatch(len(open)),
		DaysUntil:     noDeadline,
	}

	var planning model.PlanningData
	if in.Planning != nil {
		planning = *in.Planning
	}

	best, ok := a.nearestDeadline(planning, now)
	if !ok {
		best, ok = a.topTask(open, now)
	}
	if ok {
		out.Focus = best.name
		out.FocusKind = best.kind
		out.Module = best.module
		out.Deadline = best.label
		out.Weight = best.weight
		if best.days != noDeadline {
			out.DaysUntil = best.days
			out.HasDeadline = true
		}
	}

	out.Importance = moduleImportance(planning.Modules, out.Module)
	if out.FocusKind == FocusTask && out.Module == "" {
		out.Importance = importanceFromTask(best.priority)
	}
	out.ExamDate = a.relatedExam(planning.Exams, out.Module, now)

	if out.HasDeadline {
		out.Urgency = Urgency(out.DaysUntil)
	}
	out.Confidence = Confidence(out.DaysUntil, out.Importance, out.CapacityMatch)
	out.Priority = PriorityFromUrgency(out.Urgency)
	out.Reasoning = model.Reasoning{
		DeadlineProximity: deadlineReason(out),
		ModuleWeight:      moduleReason(out),
		WorkloadBalance:   workloadReason(out),
	}
	return out
}

func (a *Analyzer) nearestDeadline(p model.PlanningData, now time.Time) (candidate, bool) {
	var best candidate
	found := false

	consider := func(c candidate, label string) {
		t, err := a.parser.Parse(label, now)
		if err != nil {
			return
		}
		days := a.parser.DaysUntil(t, now)
		if days < 0 {
			return
		}
		c.days = days
		if !found || days < best.days {
			best, found = c, true
		}
	}

	for _, as := range p.Assignments {
		consider(candidate{name: as.Name, kind: FocusAssignment, module: as.Module, label: as.Deadline, weight: as.Weight}, as.Deadline)
	}
	for _, ex := range p.Exams {
		consider(candidate{name: ex.Name, kind: FocusExam, module: ex.Module, label: ex.Date, weight: ex.Weight}, ex.Date)
	}
	return best, found
}

func (a *Analyzer) topTask(open []model.Task, now time.Time) (candidate, bool) {
	var best *model.Task
	for i := range open {
		if best == nil || open[i].Priority.Rank() > best.Priority.Rank() {
			best = &open[i]
		}
	}
	if best == nil {
		return candidate{}, false
	}

	c := candidate{name: best.Title, kind: FocusTask, label: best.DueDate, days: noDeadline, priority: best.Priority.Rank()}
	if best.DueDate != "" {
		if t, err := a.parser.Parse(best.DueDate, now); err == nil {
			if days := a.parser.DaysUntil(t, now); days >= 0 {
				c.days = days
			}
		}
	}
	return c, true
}

func (a *Analyzer) relatedExam(exams []model.ExamInfo, module string, now time.Time) string {
	if module == "" {
		return ""
	}
	bestDays := noDeadline
	label := ""
	for _, ex := range exams {
		if !sameModule(ex.Module, module) {
			continue
		}
		t, err := a.parser.Parse(ex.Date, now)
		if err != nil {
			continue
		}
		if days := a.parser.DaysUntil(t, now); days >= 0 && days < bestDays {
			bestDays, label = days, ex.Date
		}
	}
	return label
}

func openTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func moduleImportance(modules []model.ModuleInfo, module string) model.Importance {
	if module == "" {
		return model.ImportanceMedium
	}
	for _, m := range modules {
		if sameModule(m.Code, module) || sameModule(m.Name, module) {
			switch m.Importance {
			case model.ImportanceHigh, model.ImportanceMedium, model.ImportanceLow:
				return m.Importance
			}
			return model.ImportanceMedium
		}
	}
	return model.ImportanceMedium
}

func importanceFromTask(rank int) model.Importance {
	switch {
	case rank >= model.PriorityHigh.Rank():
		return model.ImportanceHigh
	case rank <= model.PriorityLow.Rank():
		return model.ImportanceLow
	default:
		return model.ImportanceMedium
	}
}

func sameModule(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func deadlineReason(a Analysis) string {
	if !a.HasDeadline {
		return "No upcoming deadline found"
	}
	what := a.FocusKind
	if what == "" {
		what = "deadline"
	}
	switch a.DaysUntil {
	case 0:
		return fmt.Sprintf("%s %q is due today", capitalize(what), a.Focus)
	case 1:
		return fmt.Sprintf("%s %q is due tomorrow", capitalize(what), a.Focus)
	default:
		return fmt.Sprintf("%s %q is due in %d days", capitalize(what), a.Focus, a.DaysUntil)
	}
}

func moduleReason(a Analysis) string {
	subject := a.Module
	if subject == "" {
		subject = "This work"
	}
	reason := fmt.Sprintf("%s has %s importance", subject, a.Importance)
	if pct := weightPercent(a.Weight); pct > 0 {
		reason += fmt.Sprintf(" and counts %d%% toward the final grade", pct)
	}
	return reason
}

func workloadReason(a Analysis) string {
	pct := int(math.Round(a.CapacityMatch * 100))
	switch {
	case a.OpenTasks == 0:
		return "No open tasks, full capacity available"
	case a.CapacityMatch == 0:
		return fmt.Sprintf("%d open tasks, consider deferring low-priority work", a.OpenTasks)
	default:
		return fmt.Sprintf("%d open tasks, %d%% capacity available", a.OpenTasks, pct)
	}
}

// weightPercent accepts weights given as a fraction or as a percentage.
func weightPercent(w float64) int {
	if w <= 0 {
		return 0
	}
	if w <= 1 {
		w *= 100
	}
	return int(math.Round(w))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
