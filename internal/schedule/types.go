package schedule

import (
	"time"

	"life-balance-planner/internal/model"
)

// GenerateInput selects the day to plan. A zero Date means today.
type GenerateInput struct {
	Date time.Time
}

// GenerateOutput is the schedule that replaced the previous one.
type GenerateOutput struct {
	Date     time.Time
	Events   []model.ScheduleEvent
	Exported int
}
