package advisory

import (
	"fmt"
	"time"

	"life-balance-planner/internal/model"
)

const (
	textScheduleSuggestion = "I notice you're building up quite a task list! Would you like me to help prioritize and create a balanced schedule?"
	textOverloadWarning    = "⚠️ Your workload seems heavy with many academic tasks. I recommend adding some wellness activities to maintain balance!"
)

// ScheduleSuggestion is raised when the task list grows long.
func ScheduleSuggestion() model.AdvisoryMessage {
	return model.AdvisoryMessage{Kind: model.AdvisoryScheduleSuggestion, Text: textScheduleSuggestion}
}

// TaskCompleted congratulates the user on finishing a task.
func TaskCompleted(title string) model.AdvisoryMessage {
	return model.AdvisoryMessage{
		Kind: model.AdvisoryTaskCompleted,
		Text: fmt.Sprintf("Great job completing %q! Keep up the momentum! 🎉", title),
	}
}

// OverloadWarning is raised when the balance classifier reports OVERLOADED.
func OverloadWarning() model.AdvisoryMessage {
	return model.AdvisoryMessage{Kind: model.AdvisoryOverloadWarning, Text: textOverloadWarning}
}

// ScheduleGenerated summarises a freshly generated schedule.
func ScheduleGenerated(date time.Time) model.AdvisoryMessage {
	return model.AdvisoryMessage{
		Kind: model.AdvisoryScheduleGenerated,
		Text: fmt.Sprintf(
			"I've created a balanced schedule for %s! I prioritized your high-energy hours for academics and included wellness breaks.",
			date.Format("Monday, Jan 2"),
		),
	}
}

// RecommendationReady announces a new recommendation.
func RecommendationReady(text string) model.AdvisoryMessage {
	return model.AdvisoryMessage{
		Kind: model.AdvisoryRecommendationReady,
		Text: "New recommendation: " + text,
	}
}

// DocumentFailed reports a document that could not be processed.
func DocumentFailed(name, reason string) model.AdvisoryMessage {
	return model.AdvisoryMessage{
		Kind: model.AdvisoryDocumentFailed,
		Text: fmt.Sprintf("I couldn't process %q: %s", name, reason),
	}
}
