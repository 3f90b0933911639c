package http

import (
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/schedule"
)

const dateLayout = "2006-01-02"

type generateReq struct {
	Date string `json:"date"`
}

func (r generateReq) toInput() (schedule.GenerateInput, error) {
	if r.Date == "" {
		return schedule.GenerateInput{}, nil
	}
	d, err := time.ParseInLocation(dateLayout, r.Date, time.Local)
	if err != nil {
		return schedule.GenerateInput{}, errInvalidDate
	}
	return schedule.GenerateInput{Date: d}, nil
}

type eventResp struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Location string `json:"location,omitempty"`
	Duration string `json:"duration"`
	Color    string `json:"color"`
	TaskID   string `json:"taskId,omitempty"`
}

func newEventResp(e model.ScheduleEvent) eventResp {
	return eventResp{
		ID:       e.ID,
		Date:     e.Date,
		Time:     e.Time,
		Title:    e.Title,
		Category: string(e.Category),
		Location: e.Location,
		Duration: e.Duration,
		Color:    e.Color,
		TaskID:   e.TaskID,
	}
}

func newEventsResp(events []model.ScheduleEvent) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type generateResp struct {
	Date     string      `json:"date"`
	Events   []eventResp `json:"events"`
	Exported int         `json:"exported,omitempty"`
}

func newGenerateResp(out schedule.GenerateOutput) generateResp {
	return generateResp{
		Date:     out.Date.Format(dateLayout),
		Events:   newEventsResp(out.Events),
		Exported: out.Exported,
	}
}
