package balance

// Default business thresholds. Override them through Thresholds.
const (
	DefaultOverloadAcademics      = 8
	DefaultOverloadMinWellness    = 2
	DefaultLightLoadTotal         = 5
	DefaultLightLoadMinWellness   = 1
	DefaultBurnoutHighAcademics   = 10
	DefaultBurnoutMediumAcademics = 6
)

// Thresholds holds the counts the classifier compares against.
type Thresholds struct {
	// OVERLOADED when academics > OverloadAcademics and wellness < OverloadMinWellness.
	OverloadAcademics   int
	OverloadMinWellness int

	// BALANCED (light load) when total < LightLoadTotal and wellness >= LightLoadMinWellness.
	LightLoadTotal       int
	LightLoadMinWellness int

	// Burnout is High above BurnoutHighAcademics, Medium above BurnoutMediumAcademics.
	BurnoutHighAcademics   int
	BurnoutMediumAcademics int
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OverloadAcademics:      DefaultOverloadAcademics,
		OverloadMinWellness:    DefaultOverloadMinWellness,
		LightLoadTotal:         DefaultLightLoadTotal,
		LightLoadMinWellness:   DefaultLightLoadMinWellness,
		BurnoutHighAcademics:   DefaultBurnoutHighAcademics,
		BurnoutMediumAcademics: DefaultBurnoutMediumAcademics,
	}
}

// WithDefaults fills every non-positive field from DefaultThresholds.
func (t Thresholds) WithDefaults() Thresholds {
	d := DefaultThresholds()
	if t.OverloadAcademics <= 0 {
		t.OverloadAcademics = d.OverloadAcademics
	}
	if t.OverloadMinWellness <= 0 {
		t.OverloadMinWellness = d.OverloadMinWellness
	}
	if t.LightLoadTotal <= 0 {
		t.LightLoadTotal = d.LightLoadTotal
	}
	if t.LightLoadMinWellness <= 0 {
		t.LightLoadMinWellness = d.LightLoadMinWellness
	}
	if t.BurnoutHighAcademics <= 0 {
		t.BurnoutHighAcademics = d.BurnoutHighAcademics
	}
	if t.BurnoutMediumAcademics <= 0 {
		t.BurnoutMediumAcademics = d.BurnoutMediumAcademics
	}
	return t
}
