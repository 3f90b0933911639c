package analyzer

import "life-balance-planner/internal/model"

// Urgency score boundaries. Scores at a boundary fall into the higher bucket.
const (
	HighUrgencyThreshold   = 0.8
	MediumUrgencyThreshold = 0.5
)

const (
	baseConfidence = 0.5

	// UrgencyHorizonDays is the distance at which urgency reaches zero.
	UrgencyHorizonDays = 14
	// CapacityTaskCount is the open-task load at which capacity is exhausted.
	CapacityTaskCount = 10
)

// PriorityFromUrgency buckets an urgency score in [0,1].
func PriorityFromUrgency(score float64) model.RecommendationPriority {
	switch {
	case score >= HighUrgencyThreshold:
		return model.RecommendationHigh
	case score >= MediumUrgencyThreshold:
		return model.RecommendationMedium
	default:
		return model.RecommendationLow
	}
}

// DeadlineBonus is the confidence contributed by deadline proximity.
func DeadlineBonus(daysUntil int) float64 {
	switch {
	case daysUntil <= 1:
		return 0.4
	case daysUntil <= 3:
		return 0.3
	case daysUntil <= 7:
		return 0.2
	default:
		return 0
	}
}

// ImportanceBonus is the confidence contributed by module importance.
// Unknown importance counts as low.
func ImportanceBonus(imp model.Importance) float64 {
	switch imp {
	case model.ImportanceHigh:
		return 0.3
	case model.ImportanceMedium:
		return 0.2
	default:
		return 0.1
	}
}

// Confidence scores how sure the analyzer is about a focus suggestion.
func Confidence(daysUntil int, imp model.Importance, capacityMatch float64) float64 {
	c := baseConfidence + DeadlineBonus(daysUntil) + ImportanceBonus(imp) + clamp01(capacityMatch)*0.2
	return clamp01(c)
}

// CapacityMatch is the share of capacity left with openTasks outstanding.
func CapacityMatch(openTasks int) float64 {
	return clamp01(1 - float64(openTasks)/CapacityTaskCount)
}

// Urgency falls linearly from 1 today to 0 at the horizon.
func Urgency(daysUntil int) float64 {
	return clamp01(1 - float64(daysUntil)/UrgencyHorizonDays)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
