package advisory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/log"
)

const (
	// DefaultHistorySize is how many messages History can return.
	DefaultHistorySize = 50
	// DefaultSubscriberBuffer is the channel capacity handed to subscribers.
	DefaultSubscriberBuffer = 16
)

// Bus fans advisory messages out to subscribers and keeps a short history.
type Bus struct {
	l           log.Logger
	historySize int
	now         func() time.Time

	mu      sync.Mutex
	closed  bool
	nextSub int
	subs    map[int]chan model.AdvisoryMessage
	timers  map[*time.Timer]struct{}
	history []model.AdvisoryMessage
}

// NewBus creates a Bus. historySize <= 0 uses DefaultHistorySize.
func NewBus(l log.Logger, historySize int) *Bus {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Bus{
		l:           l,
		historySize: historySize,
		now:         time.Now,
		subs:        make(map[int]chan model.AdvisoryMessage),
		timers:      make(map[*time.Timer]struct{}),
	}
}

// Subscribe returns a channel receiving every message published from now on,
// and a function that cancels the subscription.
func (b *Bus) Subscribe(buffer int) (<-chan model.AdvisoryMessage, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	ch := make(chan model.AdvisoryMessage, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextSub
	b.nextSub++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Publish implements Publisher.
func (b *Bus) Publish(ctx context.Context, msg model.AdvisoryMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deliverLocked(ctx, msg)
}

// PublishAfter implements Publisher.
func (b *Bus) PublishAfter(ctx context.Context, delay time.Duration, msg model.AdvisoryMessage) {
	if delay <= 0 {
		b.Publish(ctx, msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	// The request context is gone by the time the timer fires.
	logCtx := log.WithRequestID(context.Background(), log.RequestID(ctx))

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, pending := b.timers[timer]; !pending {
			return
		}
		delete(b.timers, timer)
		b.deliverLocked(logCtx, msg)
	})
	b.timers[timer] = struct{}{}
}

// History returns up to limit of the most recent messages, oldest first.
func (b *Bus) History(limit int) []model.AdvisoryMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := 0
	if limit > 0 && len(b.history) > limit {
		start = len(b.history) - limit
	}
	out := make([]model.AdvisoryMessage, len(b.history)-start)
	copy(out, b.history[start:])
	return out
}

// Pending returns the number of deferred messages not yet delivered.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.timers)
}

// Close cancels deferred messages and closes every subscriber channel.
// Timers that already fired but have not run yet become no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	for t := range b.timers {
		t.Stop()
	}
	b.timers = make(map[*time.Timer]struct{})

	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}

func (b *Bus) deliverLocked(ctx context.Context, msg model.AdvisoryMessage) {
	if b.closed {
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = b.now()
	}

	b.history = append(b.history, msg)
	if len(b.history) > b.historySize {
		b.history = b.history[len(b.history)-b.historySize:]
	}

	for id, ch := range b.subs {
		select {
		case ch <- msg:
		default:
			b.l.Warnf(ctx, "advisory.Bus: subscriber %d is full, dropping %s message", id, msg.Kind)
		}
	}
}
