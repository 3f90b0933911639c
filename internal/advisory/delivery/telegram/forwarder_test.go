package telegram_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/advisory/delivery/telegram"
	"life-balance-planner/internal/model"
	"life-balance-planner/pkg/log"
)

type mockSender struct {
	mu    sync.Mutex
	texts []string
	fail  bool
	sent  chan struct{}
}

func (m *mockSender) SendMessage(ctx context.Context, text string) error {
	defer func() { m.sent <- struct{}{} }()
	if m.fail {
		return errors.New("chat not found")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
	return nil
}

func waitSent(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestForwarder(t *testing.T) {
	l := log.NewNop()

	t.Run("forwards every kind", func(t *testing.T) {
		bus := advisory.NewBus(l, 0)
		sender := &mockSender{sent: make(chan struct{}, 4)}
		fw := telegram.New(l, bus, sender)
		fw.Start()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() { fw.Run(ctx); close(done) }()

		bus.Publish(ctx, advisory.TaskCompleted("Essay"))
		bus.Publish(ctx, advisory.OverloadWarning())
		waitSent(t, sender.sent)
		waitSent(t, sender.sent)

		cancel()
		<-done
		if len(sender.texts) != 2 || sender.texts[0] != advisory.TaskCompleted("Essay").Text {
			t.Errorf("texts = %v", sender.texts)
		}
	})

	t.Run("kind filter", func(t *testing.T) {
		bus := advisory.NewBus(l, 0)
		sender := &mockSender{sent: make(chan struct{}, 4)}
		fw := telegram.New(l, bus, sender, telegram.WithKinds(model.AdvisoryRecommendationReady))
		fw.Start()

		done := make(chan struct{})
		go func() { fw.Run(context.Background()); close(done) }()

		ctx := context.Background()
		bus.Publish(ctx, advisory.TaskCompleted("Essay"))
		bus.Publish(ctx, advisory.RecommendationReady("Rest"))
		waitSent(t, sender.sent)

		bus.Close()
		<-done
		if len(sender.texts) != 1 || sender.texts[0] != "New recommendation: Rest" {
			t.Errorf("texts = %v", sender.texts)
		}
	})

	t.Run("send failure keeps running", func(t *testing.T) {
		bus := advisory.NewBus(l, 0)
		sender := &mockSender{fail: true, sent: make(chan struct{}, 4)}
		fw := telegram.New(l, bus, sender)
		fw.Start()

		done := make(chan struct{})
		go func() { fw.Run(context.Background()); close(done) }()

		ctx := context.Background()
		bus.Publish(ctx, advisory.OverloadWarning())
		bus.Publish(ctx, advisory.ScheduleSuggestion())
		waitSent(t, sender.sent)
		waitSent(t, sender.sent)

		bus.Close()
		<-done
	})
}
