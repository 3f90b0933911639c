package model

// ScheduleEvent is one time-boxed block of a generated schedule.
type ScheduleEvent struct {
	ID       string
	Date     string // YYYY-MM-DD the schedule was generated for
	Time     string // e.g. "09:00 AM"
	Title    string
	Category Category
	Location string
	Duration string // e.g. "2h", "30m"
	Color    string
	TaskID   string // source task, empty for breaks

	// StartMinute is minutes after midnight, DurationMinutes the block length.
	StartMinute     int
	DurationMinutes int
}
