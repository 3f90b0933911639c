package model

// BalanceStatus is the three-way classification of the open task load.
type BalanceStatus string

const (
	BalanceBalanced   BalanceStatus = "BALANCED"
	BalanceOverloaded BalanceStatus = "OVERLOADED"
	BalanceRelaxed    BalanceStatus = "RELAXED"
)

// BurnoutRisk is derived from the open academic task volume.
type BurnoutRisk string

const (
	BurnoutLow    BurnoutRisk = "Low"
	BurnoutMedium BurnoutRisk = "Medium"
	BurnoutHigh   BurnoutRisk = "High"
)

// Metric bounds for energy and stress.
const (
	MinMetric = 0
	MaxMetric = 100
)

// UserMetrics holds the user's self-reported and derived wellbeing signals.
type UserMetrics struct {
	Energy      int
	Stress      int
	BurnoutRisk BurnoutRisk
}
