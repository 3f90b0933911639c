package telegram

import (
	"context"
	"sync"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/log"
)

// DefaultSendTimeout bounds a single delivery to the chat.
const DefaultSendTimeout = 10 * time.Second

// Sender delivers text to the configured chat.
type Sender interface {
	SendMessage(ctx context.Context, text string) error
}

// Source is the advisory stream the forwarder drains.
type Source interface {
	Subscribe(buffer int) (<-chan model.AdvisoryMessage, func())
}

// Forwarder relays advisory messages to a chat.
type Forwarder struct {
	l       log.Logger
	source  Source
	sender  Sender
	kinds   map[model.AdvisoryKind]bool
	timeout time.Duration

	once sync.Once
	ch   <-chan model.AdvisoryMessage
	stop func()
}

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithKinds restricts forwarding to the given kinds.
func WithKinds(kinds ...model.AdvisoryKind) Option {
	return func(f *Forwarder) {
		f.kinds = make(map[model.AdvisoryKind]bool, len(kinds))
		for _, k := range kinds {
			f.kinds[k] = true
		}
	}
}

// WithTimeout sets the per-message send timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Forwarder) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// New creates a Forwarder. Nothing is sent until Run.
func New(l log.Logger, source Source, sender Sender, opts ...Option) *Forwarder {
	f := &Forwarder{l: l, source: source, sender: sender, timeout: DefaultSendTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start subscribes to the source. Messages published after Start are
// buffered until Run drains them. Calling Start more than once is a no-op.
func (f *Forwarder) Start() {
	f.once.Do(func() {
		f.ch, f.stop = f.source.Subscribe(0)
	})
}

// Run forwards messages until ctx is done or the source closes. Send
// failures are logged and the message is dropped.
func (f *Forwarder) Run(ctx context.Context) {
	f.Start()
	defer f.stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-f.ch:
			if !ok {
				return
			}
			f.forward(ctx, msg)
		}
	}
}

func (f *Forwarder) forward(ctx context.Context, msg model.AdvisoryMessage) {
	if len(f.kinds) > 0 && !f.kinds[msg.Kind] {
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := f.sender.SendMessage(sendCtx, msg.Text); err != nil {
		f.l.Warnf(ctx, "advisory.delivery.telegram.forward: %s: %v", msg.Kind, err)
	}
}
