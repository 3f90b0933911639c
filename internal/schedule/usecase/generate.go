package usecase

import (
	"context"
	"fmt"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/schedule"
	"life-balance-planner/internal/task"
	"life-balance-planner/pkg/gcalendar"
	"life-balance-planner/pkg/metrics"
)

// Generate plans the day from the open tasks: an academics block, a break
// and a wellness block, starting at 09:00. The result replaces the
// previous schedule. A concurrent call fails with ErrGenerationInProgress.
func (uc *implUseCase) Generate(ctx context.Context, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	if !uc.running.CompareAndSwap(false, true) {
		metrics.RecordSchedule("busy")
		return schedule.GenerateOutput{}, schedule.ErrGenerationInProgress
	}
	defer uc.running.Store(false)

	date := input.Date
	if date.IsZero() {
		date = uc.now()
	}
	date = date.In(uc.location)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.location)

	open := false
	listed, err := uc.tasks.List(ctx, task.ListInput{Completed: &open})
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Generate: List tasks: %v", err)
		metrics.RecordSchedule("error")
		return schedule.GenerateOutput{}, fmt.Errorf("list tasks: %w", err)
	}

	events := uc.buildEvents(ctx, day, listed.Tasks)

	if err := uc.repo.ReplaceEvents(ctx, events); err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Generate: ReplaceEvents: %v", err)
		metrics.RecordSchedule("error")
		return schedule.GenerateOutput{}, fmt.Errorf("store schedule: %w", err)
	}

	uc.publisher.Publish(ctx, advisory.ScheduleGenerated(day))
	metrics.RecordSchedule("ok")

	out := schedule.GenerateOutput{Date: day, Events: events}
	if uc.exporter != nil {
		out.Exported = uc.export(ctx, day, events)
	}
	return out, nil
}

func (uc *implUseCase) buildEvents(ctx context.Context, day time.Time, tasks []model.Task) []model.ScheduleEvent {
	var academics, wellness, work []model.Task
	for _, t := range tasks {
		switch t.Category {
		case model.CategoryAcademics:
			academics = append(academics, t)
		case model.CategoryWellness:
			wellness = append(wellness, t)
		case model.CategoryWork:
			work = append(work, t)
		}
	}
	if len(work) > 0 {
		uc.l.Debugf(ctx, "schedule.usecase.Generate: %d work tasks not scheduled", len(work))
	}

	date := day.Format("2006-01-02")
	cursor := DayStartMinute
	var events []model.ScheduleEvent

	block := func(title string, cat model.Category, minutes int, taskID string) {
		events = append(events, model.ScheduleEvent{
			ID:              uc.newID(),
			Date:            date,
			Time:            FormatClock(cursor),
			Title:           title,
			Category:        cat,
			Duration:        FormatDuration(minutes),
			Color:           CategoryColor(cat),
			TaskID:          taskID,
			StartMinute:     cursor,
			DurationMinutes: minutes,
		})
		cursor += minutes
	}

	if len(academics) > 0 {
		block(academics[0].Title, model.CategoryAcademics, AcademicBlockMinutes, academics[0].ID)
	}
	block(BreakTitle, model.CategoryBreak, BreakBlockMinutes, "")
	if len(wellness) > 0 {
		block(wellness[0].Title, model.CategoryWellness, WellnessBlockMinutes, wellness[0].ID)
	}
	return events
}

// export mirrors events to the calendar. Failures are logged and skipped.
// Blocks already on the calendar with the same title and start are not
// created again, so regenerating a day does not duplicate them.
func (uc *implUseCase) export(ctx context.Context, day time.Time, events []model.ScheduleEvent) int {
	existing := uc.calendarBlocks(ctx, day)
	exported := 0
	for _, e := range events {
		start := day.Add(time.Duration(e.StartMinute) * time.Minute)
		if existing[blockKey(e.Title, start)] {
			continue
		}
		_, err := uc.exporter.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     e.Title,
			Description: fmt.Sprintf("%s block planned by life-balance-planner", e.Category),
			Location:    e.Location,
			ColorID:     calendarColorIDs[e.Category],
			StartTime:   start,
			EndTime:     start.Add(time.Duration(e.DurationMinutes) * time.Minute),
		})
		if err != nil {
			uc.l.Warnf(ctx, "schedule.usecase.export: CreateEvent %q: %v", e.Title, err)
			continue
		}
		exported++
	}
	return exported
}

// calendarBlocks lists what the calendar already holds for day. A failed
// lookup yields nothing, so every block is created.
func (uc *implUseCase) calendarBlocks(ctx context.Context, day time.Time) map[string]bool {
	items, err := uc.exporter.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: day,
		TimeMax: day.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "schedule.usecase.export: ListEvents: %v", err)
		return nil
	}
	keys := make(map[string]bool, len(items))
	for _, it := range items {
		keys[blockKey(it.Summary, it.StartTime)] = true
	}
	return keys
}

func blockKey(title string, start time.Time) string {
	return fmt.Sprintf("%s@%d", title, start.Unix())
}
