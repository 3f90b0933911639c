package http

import (
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Category    string `json:"category"    binding:"required"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	EffortLevel int    `json:"effortLevel"`
	Description string `json:"description" binding:"max=2000"`
}

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:       r.Title,
		Category:    model.Category(r.Category),
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
		Time:        r.Time,
		Duration:    r.Duration,
		Effort:      r.EffortLevel,
		Description: r.Description,
	}
}

type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"dueDate"`
	Time        *string `json:"time"`
	Duration    *string `json:"duration"`
	EffortLevel *int    `json:"effortLevel"`
	Description *string `json:"description"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		Time:        r.Time,
		Duration:    r.Duration,
		Effort:      r.EffortLevel,
		Description: r.Description,
	}
	if r.Category != nil {
		c := model.Category(*r.Category)
		in.Category = &c
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

type listReq struct {
	Category  string `form:"category"`
	Completed *bool  `form:"completed"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Category:  model.Category(r.Category),
		Completed: r.Completed,
	}
}

type metricsReq struct {
	Energy *int `json:"energy"`
	Stress *int `json:"stress"`
}

func (r metricsReq) toInput() task.UpdateMetricsInput {
	return task.UpdateMetricsInput{Energy: r.Energy, Stress: r.Stress}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	DueDate     string    `json:"dueDate,omitempty"`
	Time        string    `json:"time,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	EffortLevel int       `json:"effortLevel,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Category:    string(t.Category),
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		Time:        t.Time,
		Duration:    t.Duration,
		EffortLevel: t.Effort,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type metricsResp struct {
	Energy      int    `json:"energy"`
	Stress      int    `json:"stress"`
	BurnoutRisk string `json:"burnoutRisk"`
}

func newMetricsResp(m model.UserMetrics) metricsResp {
	return metricsResp{Energy: m.Energy, Stress: m.Stress, BurnoutRisk: string(m.BurnoutRisk)}
}

type balanceResp struct {
	Status  string      `json:"status"`
	Metrics metricsResp `json:"metrics"`
	Counts  countsResp  `json:"counts"`
}

type countsResp struct {
	Academics int `json:"academics"`
	Work      int `json:"work"`
	Wellness  int `json:"wellness"`
	Social    int `json:"social"`
	Total     int `json:"total"`
}

func (h *handler) newBalanceResp(out task.BalanceOutput) balanceResp {
	return balanceResp{
		Status:  string(out.Status),
		Metrics: newMetricsResp(out.Metrics),
		Counts: countsResp{
			Academics: out.Counts.Academics,
			Work:      out.Counts.Work,
			Wellness:  out.Counts.Wellness,
			Social:    out.Counts.Social,
			Total:     out.Counts.Total,
		},
	}
}
