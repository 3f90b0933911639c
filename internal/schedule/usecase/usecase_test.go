package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/schedule"
	"life-balance-planner/internal/schedule/repository/memory"
	"life-balance-planner/internal/task"
	"life-balance-planner/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockPublisher struct {
	mu   sync.Mutex
	sent []model.AdvisoryMessage
}

func (m *mockPublisher) Publish(ctx context.Context, msg model.AdvisoryMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *mockPublisher) PublishAfter(ctx context.Context, delay time.Duration, msg model.AdvisoryMessage) {
	m.Publish(ctx, msg)
}

type mockTasks struct {
	tasks []model.Task
	err   error
	// gate, when set, blocks List until closed.
	gate    chan struct{}
	entered chan struct{}
	gotOpen *bool
}

func (m *mockTasks) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	m.gotOpen = input.Completed
	if m.entered != nil {
		close(m.entered)
	}
	if m.gate != nil {
		<-m.gate
	}
	if m.err != nil {
		return task.ListOutput{}, m.err
	}
	return task.ListOutput{Tasks: m.tasks, Total: len(m.tasks)}, nil
}

type mockExporter struct {
	reqs     []gcalendar.CreateEventRequest
	fail     string
	existing []gcalendar.Event
	listErr  error
}

func (m *mockExporter) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []gcalendar.Event
	for _, e := range m.existing {
		if !e.StartTime.Before(req.TimeMin) && e.StartTime.Before(req.TimeMax) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockExporter) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.Summary == m.fail {
		return nil, errors.New("calendar down")
	}
	m.reqs = append(m.reqs, req)
	return &gcalendar.Event{ID: "evt"}, nil
}

var planDay = time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)

func newTestUseCase(src *mockTasks, opts ...Option) (*implUseCase, *mockPublisher) {
	pub := &mockPublisher{}
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return New(&mockLogger{}, memory.New(), src, pub, opts...), pub
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("academics break wellness", func(t *testing.T) {
		src := &mockTasks{tasks: []model.Task{
			{ID: "w1", Title: "Shift", Category: model.CategoryWork},
			{ID: "a1", Title: "Essay", Category: model.CategoryAcademics},
			{ID: "a2", Title: "Lab", Category: model.CategoryAcademics},
			{ID: "y1", Title: "Yoga", Category: model.CategoryWellness},
		}}
		uc, pub := newTestUseCase(src)

		out, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if src.gotOpen == nil || *src.gotOpen {
			t.Errorf("expected only open tasks to be requested")
		}

		want := []struct {
			time, title, duration, color string
			cat                          model.Category
		}{
			{"09:00 AM", "Essay", "2h", "#3B82F6", model.CategoryAcademics},
			{"11:00 AM", BreakTitle, "30m", "#9CA3AF", model.CategoryBreak},
			{"11:30 AM", "Yoga", "1h", "#22C997", model.CategoryWellness},
		}
		if len(out.Events) != len(want) {
			t.Fatalf("got %d events, want %d: %+v", len(out.Events), len(want), out.Events)
		}
		for i, w := range want {
			e := out.Events[i]
			if e.Time != w.time || e.Title != w.title || e.Duration != w.duration || e.Color != w.color || e.Category != w.cat {
				t.Errorf("event %d = %+v, want %+v", i, e, w)
			}
			if e.Date != "2024-05-01" {
				t.Errorf("event %d date = %q", i, e.Date)
			}
		}
		if out.Events[0].TaskID != "a1" || out.Events[1].TaskID != "" {
			t.Errorf("unexpected task ids: %q %q", out.Events[0].TaskID, out.Events[1].TaskID)
		}

		if len(pub.sent) != 1 || pub.sent[0].Kind != model.AdvisoryScheduleGenerated {
			t.Fatalf("expected one schedule advisory, got %+v", pub.sent)
		}
		if !strings.Contains(pub.sent[0].Text, "Wednesday, May 1") {
			t.Errorf("advisory text = %q", pub.sent[0].Text)
		}
	})

	t.Run("break only when no tasks", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockTasks{})
		out, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 1 || out.Events[0].Time != "09:00 AM" || out.Events[0].Category != model.CategoryBreak {
			t.Errorf("unexpected events: %+v", out.Events)
		}
	})

	t.Run("replaces previous schedule", func(t *testing.T) {
		src := &mockTasks{tasks: []model.Task{{ID: "a1", Title: "Essay", Category: model.CategoryAcademics}}}
		uc, _ := newTestUseCase(src)

		first, _ := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		src.tasks = nil
		if _, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		events, _ := uc.List(ctx)
		if len(events) != 1 {
			t.Fatalf("expected schedule to be replaced, got %d events", len(events))
		}
		if _, err := uc.Detail(ctx, first.Events[0].ID); !errors.Is(err, schedule.ErrEventNotFound) {
			t.Errorf("expected old event to be gone, got %v", err)
		}
		if _, err := uc.Detail(ctx, events[0].ID); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero date uses today", func(t *testing.T) {
		uc, _ := newTestUseCase(&mockTasks{})
		uc.now = func() time.Time { return planDay }
		out, _ := uc.Generate(ctx, schedule.GenerateInput{})
		if !out.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v", out.Date)
		}
	})

	t.Run("task source failure keeps schedule", func(t *testing.T) {
		src := &mockTasks{}
		uc, pub := newTestUseCase(src)
		_, _ = uc.Generate(ctx, schedule.GenerateInput{Date: planDay})

		src.err = errors.New("boom")
		if _, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay}); err == nil {
			t.Fatalf("expected error")
		}
		events, _ := uc.List(ctx)
		if len(events) != 1 {
			t.Errorf("expected previous schedule to survive, got %+v", events)
		}
		if len(pub.sent) != 1 {
			t.Errorf("expected no advisory for the failed run")
		}
	})

	t.Run("concurrent call is rejected", func(t *testing.T) {
		src := &mockTasks{gate: make(chan struct{}), entered: make(chan struct{})}
		uc, _ := newTestUseCase(src)

		done := make(chan error, 1)
		go func() {
			_, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
			done <- err
		}()
		<-src.entered

		if _, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay}); !errors.Is(err, schedule.ErrGenerationInProgress) {
			t.Errorf("expected ErrGenerationInProgress, got %v", err)
		}

		close(src.gate)
		if err := <-done; err != nil {
			t.Fatalf("first generation failed: %v", err)
		}

		src.gate, src.entered = nil, nil
		if _, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay}); err != nil {
			t.Errorf("expected generation to be possible again, got %v", err)
		}
	})

	t.Run("export is best effort", func(t *testing.T) {
		src := &mockTasks{tasks: []model.Task{
			{ID: "a1", Title: "Essay", Category: model.CategoryAcademics},
			{ID: "y1", Title: "Yoga", Category: model.CategoryWellness},
		}}
		exp := &mockExporter{fail: "Yoga"}
		uc, _ := newTestUseCase(src, WithExporter(exp))

		out, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Exported != 2 {
			t.Errorf("exported = %d, want 2", out.Exported)
		}
		if len(exp.reqs) == 0 {
			t.Fatalf("nothing exported")
		}
		first := exp.reqs[0]
		if !first.StartTime.Equal(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)) || first.EndTime.Sub(first.StartTime) != 2*time.Hour {
			t.Errorf("unexpected export window: %v - %v", first.StartTime, first.EndTime)
		}
	})

	t.Run("export skips blocks already on the calendar", func(t *testing.T) {
		src := &mockTasks{tasks: []model.Task{
			{ID: "a1", Title: "Essay", Category: model.CategoryAcademics},
		}}
		exp := &mockExporter{existing: []gcalendar.Event{
			{Summary: "Essay", StartTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		}}
		uc, _ := newTestUseCase(src, WithExporter(exp))

		out, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Exported != 1 || len(exp.reqs) != 1 || exp.reqs[0].Summary != BreakTitle {
			t.Errorf("exported = %d reqs = %+v, want only the break", out.Exported, exp.reqs)
		}
	})

	t.Run("failed calendar lookup still exports", func(t *testing.T) {
		src := &mockTasks{tasks: []model.Task{
			{ID: "a1", Title: "Essay", Category: model.CategoryAcademics},
		}}
		exp := &mockExporter{listErr: errors.New("calendar down")}
		uc, _ := newTestUseCase(src, WithExporter(exp))

		out, err := uc.Generate(ctx, schedule.GenerateInput{Date: planDay})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Exported != 2 {
			t.Errorf("exported = %d, want 2", out.Exported)
		}
	})
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minute int
		want   string
	}{
		{0, "12:00 AM"},
		{9 * 60, "09:00 AM"},
		{11*60 + 30, "11:30 AM"},
		{12 * 60, "12:00 PM"},
		{13*60 + 45, "01:30 PM"},
		{23*60 + 30, "11:30 PM"},
		{24*60 + 60, "01:00 AM"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.minute); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minute, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{30: "30m", 60: "1h", 120: "2h", 90: "1h 30m"}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
