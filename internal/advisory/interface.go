package advisory

import (
	"context"
	"time"

	"life-balance-planner/internal/model"
)

// Publisher is what the domain use cases raise advisory messages through.
type Publisher interface {
	// Publish delivers msg to subscribers now.
	Publish(ctx context.Context, msg model.AdvisoryMessage)
	// PublishAfter delivers msg once delay has elapsed, unless the bus is closed first.
	PublishAfter(ctx context.Context, delay time.Duration, msg model.AdvisoryMessage)
}

// Reader exposes the retained message history.
type Reader interface {
	History(limit int) []model.AdvisoryMessage
}
