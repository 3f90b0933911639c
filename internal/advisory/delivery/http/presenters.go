package http

import (
	"errors"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/model"
)

var errInvalidLimit = errors.New("limit must be between 1 and 50")

type historyQuery struct {
	Limit int `form:"limit"`
}

func (q historyQuery) validate() error {
	if q.Limit < 0 || q.Limit > advisory.DefaultHistorySize {
		return errInvalidLimit
	}
	return nil
}

type messageResp struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

func newHistoryResp(msgs []model.AdvisoryMessage) historyResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = messageResp{ID: m.ID, Kind: string(m.Kind), Text: m.Text, CreatedAt: m.CreatedAt}
	}
	return historyResp{Messages: out, Total: len(out)}
}
