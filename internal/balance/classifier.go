package balance

import "life-balance-planner/internal/model"

// Counts is the number of incomplete tasks per category.
type Counts struct {
	Academics int
	Work      int
	Wellness  int
	Social    int
	Total     int
}

// Result is the outcome of a classification.
type Result struct {
	Status      model.BalanceStatus
	BurnoutRisk model.BurnoutRisk
	Counts      Counts
}

// Overloaded reports whether the result should raise an overload warning.
func (r Result) Overloaded() bool {
	return r.Status == model.BalanceOverloaded
}

// Count tallies incomplete tasks. Completed tasks are ignored.
func Count(tasks []model.Task) Counts {
	var c Counts
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		c.Total++
		switch t.Category {
		case model.CategoryAcademics:
			c.Academics++
		case model.CategoryWork:
			c.Work++
		case model.CategoryWellness:
			c.Wellness++
		case model.CategorySocial:
			c.Social++
		}
	}
	return c
}

// Classify derives balance status and burnout risk from tasks using the
// default thresholds.
func Classify(tasks []model.Task) Result {
	return DefaultThresholds().Classify(tasks)
}

// Classify derives balance status and burnout risk from tasks.
func (t Thresholds) Classify(tasks []model.Task) Result {
	c := Count(tasks)
	return Result{
		Status:      t.status(c),
		BurnoutRisk: t.burnout(c),
		Counts:      c,
	}
}

// status applies the rules in order, first match wins.
func (t Thresholds) status(c Counts) model.BalanceStatus {
	switch {
	case c.Total == 0:
		return model.BalanceRelaxed
	case c.Academics > t.OverloadAcademics && c.Wellness < t.OverloadMinWellness:
		return model.BalanceOverloaded
	case c.Total < t.LightLoadTotal && c.Wellness >= t.LightLoadMinWellness:
		return model.BalanceBalanced
	default:
		return model.BalanceBalanced
	}
}

func (t Thresholds) burnout(c Counts) model.BurnoutRisk {
	switch {
	case c.Academics > t.BurnoutHighAcademics:
		return model.BurnoutHigh
	case c.Academics > t.BurnoutMediumAcademics:
		return model.BurnoutMedium
	default:
		return model.BurnoutLow
	}
}
