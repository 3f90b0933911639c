package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
	"life-balance-planner/internal/task/repository/memory"
	"life-balance-planner/internal/task/usecase"
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

type publishedMsg struct {
	delay time.Duration
	msg   model.AdvisoryMessage
}

type mockPublisher struct {
	mu   sync.Mutex
	sent []publishedMsg
}

func (m *mockPublisher) Publish(ctx context.Context, msg model.AdvisoryMessage) {
	m.PublishAfter(ctx, 0, msg)
}

func (m *mockPublisher) PublishAfter(ctx context.Context, delay time.Duration, msg model.AdvisoryMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, publishedMsg{delay: delay, msg: msg})
}

func (m *mockPublisher) kinds() []model.AdvisoryKind {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.AdvisoryKind
	for _, s := range m.sent {
		out = append(out, s.msg.Kind)
	}
	return out
}

func (m *mockPublisher) count(kind model.AdvisoryKind) int {
	n := 0
	for _, k := range m.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

func newUseCase() (task.UseCase, *mockPublisher) {
	pub := &mockPublisher{}
	return usecase.New(&mockLogger{}, memory.New(), pub, usecase.DefaultConfig()), pub
}

func add(t *testing.T, uc task.UseCase, title string, cat model.Category) model.Task {
	t.Helper()
	created, err := uc.Add(context.Background(), task.AddInput{Title: title, Category: cat, Priority: model.PriorityMedium})
	if err != nil {
		t.Fatalf("add %s: %v", title, err)
	}
	return created
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns id and defaults priority", func(t *testing.T) {
		uc, _ := newUseCase()
		created, err := uc.Add(ctx, task.AddInput{Title: "  Essay  ", Category: model.CategoryAcademics})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Errorf("expected generated id")
		}
		if created.Title != "Essay" {
			t.Errorf("expected trimmed title, got %q", created.Title)
		}
		if created.Priority != model.PriorityMedium {
			t.Errorf("expected default priority, got %s", created.Priority)
		}
	})

	t.Run("Ids are unique", func(t *testing.T) {
		uc, _ := newUseCase()
		a := add(t, uc, "a", model.CategoryWork)
		b := add(t, uc, "b", model.CategoryWork)
		if a.ID == b.ID {
			t.Errorf("expected unique ids")
		}
	})

	t.Run("Validation rejects without mutation", func(t *testing.T) {
		uc, _ := newUseCase()
		tests := []struct {
			name  string
			input task.AddInput
			want  error
		}{
			{"empty title", task.AddInput{Title: " ", Category: model.CategoryWork}, task.ErrEmptyTitle},
			{"bad category", task.AddInput{Title: "x", Category: "Hobby"}, task.ErrInvalidCategory},
			{"break is not a task category", task.AddInput{Title: "x", Category: model.CategoryBreak}, task.ErrInvalidCategory},
			{"bad priority", task.AddInput{Title: "x", Category: model.CategoryWork, Priority: "Urgent"}, task.ErrInvalidPriority},
			{"bad effort", task.AddInput{Title: "x", Category: model.CategoryWork, Effort: 6}, task.ErrInvalidEffort},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := uc.Add(ctx, tt.input); !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
			})
		}
		out, _ := uc.List(ctx, task.ListInput{})
		if out.Total != 0 {
			t.Errorf("expected no tasks stored, got %d", out.Total)
		}
	})

	t.Run("Suggests schedule above eight tasks", func(t *testing.T) {
		uc, pub := newUseCase()
		for i := 0; i < 8; i++ {
			add(t, uc, "work", model.CategoryWork)
		}
		if pub.count(model.AdvisoryScheduleSuggestion) != 0 {
			t.Fatalf("no suggestion expected at eight tasks")
		}
		add(t, uc, "ninth", model.CategoryWork)
		if pub.count(model.AdvisoryScheduleSuggestion) != 1 {
			t.Errorf("expected one suggestion, got %v", pub.kinds())
		}
		if pub.sent[len(pub.sent)-1].delay != usecase.DefaultSuggestionDelay {
			t.Errorf("expected deferred suggestion")
		}
	})
}

func TestBalanceRecalculation(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store is relaxed", func(t *testing.T) {
		uc, _ := newUseCase()
		out, _ := uc.Balance(ctx)
		if out.Status != model.BalanceRelaxed || out.Metrics.BurnoutRisk != model.BurnoutLow {
			t.Errorf("unexpected initial balance %+v", out)
		}
		if out.Metrics.Energy != usecase.DefaultEnergy || out.Metrics.Stress != usecase.DefaultStress {
			t.Errorf("unexpected initial metrics %+v", out.Metrics)
		}
	})

	t.Run("Nine academics and one wellness overloads with medium burnout", func(t *testing.T) {
		uc, pub := newUseCase()
		for i := 0; i < 9; i++ {
			add(t, uc, "study", model.CategoryAcademics)
		}
		add(t, uc, "yoga", model.CategoryWellness)

		out, _ := uc.Balance(ctx)
		if out.Status != model.BalanceOverloaded {
			t.Errorf("expected OVERLOADED, got %s", out.Status)
		}
		if out.Metrics.BurnoutRisk != model.BurnoutMedium {
			t.Errorf("expected Medium burnout, got %s", out.Metrics.BurnoutRisk)
		}
		if pub.count(model.AdvisoryOverloadWarning) == 0 {
			t.Errorf("expected overload warning, got %v", pub.kinds())
		}
	})

	t.Run("Delete recalculates", func(t *testing.T) {
		uc, _ := newUseCase()
		var last model.Task
		for i := 0; i < 9; i++ {
			last = add(t, uc, "study", model.CategoryAcademics)
		}
		if out, _ := uc.Balance(ctx); out.Status != model.BalanceOverloaded {
			t.Fatalf("expected OVERLOADED, got %s", out.Status)
		}
		if err := uc.Delete(ctx, last.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if out, _ := uc.Balance(ctx); out.Status != model.BalanceBalanced {
			t.Errorf("expected BALANCED after delete, got %s", out.Status)
		}
	})

	t.Run("Update recalculates", func(t *testing.T) {
		uc, _ := newUseCase()
		created := add(t, uc, "walk", model.CategoryWellness)
		done := true
		if _, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Completed: &done}); err != nil {
			t.Fatalf("update: %v", err)
		}
		if out, _ := uc.Balance(ctx); out.Status != model.BalanceRelaxed {
			t.Errorf("expected RELAXED, got %s", out.Status)
		}
	})
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("Toggling twice restores state and balance", func(t *testing.T) {
		uc, pub := newUseCase()
		add(t, uc, "study", model.CategoryAcademics)
		target := add(t, uc, "Read chapter 3", model.CategoryAcademics)
		before, _ := uc.Balance(ctx)

		first, err := uc.ToggleCompletion(ctx, target.ID)
		if err != nil || !first.Completed {
			t.Fatalf("expected completed, got %+v err=%v", first, err)
		}
		second, err := uc.ToggleCompletion(ctx, target.ID)
		if err != nil || second.Completed {
			t.Fatalf("expected incomplete, got %+v err=%v", second, err)
		}

		after, _ := uc.Balance(ctx)
		if before.Status != after.Status || before.Metrics.BurnoutRisk != after.Metrics.BurnoutRisk {
			t.Errorf("balance changed: %+v -> %+v", before, after)
		}
		if pub.count(model.AdvisoryTaskCompleted) != 1 {
			t.Errorf("expected exactly one congratulation, got %v", pub.kinds())
		}
		for _, s := range pub.sent {
			if s.msg.Kind == model.AdvisoryTaskCompleted && !strings.Contains(s.msg.Text, "Read chapter 3") {
				t.Errorf("unexpected text %q", s.msg.Text)
			}
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		uc, _ := newUseCase()
		if _, err := uc.ToggleCompletion(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial update", func(t *testing.T) {
		uc, _ := newUseCase()
		created := add(t, uc, "Essay", model.CategoryAcademics)
		title := "Essay draft"
		effort := 4
		updated, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Title: &title, Effort: &effort})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Title != title || updated.Effort != 4 || updated.Category != model.CategoryAcademics {
			t.Errorf("unexpected task %+v", updated)
		}
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		uc, _ := newUseCase()
		add(t, uc, "Essay", model.CategoryAcademics)
		title := "x"
		if _, err := uc.Update(ctx, task.UpdateInput{ID: "missing", Title: &title}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
		out, _ := uc.List(ctx, task.ListInput{})
		if out.Tasks[0].Title != "Essay" {
			t.Errorf("unexpected mutation %+v", out.Tasks[0])
		}
	})

	t.Run("Invalid update is rejected", func(t *testing.T) {
		uc, _ := newUseCase()
		created := add(t, uc, "Essay", model.CategoryAcademics)
		cat := model.Category("Nap")
		if _, err := uc.Update(ctx, task.UpdateInput{ID: created.ID, Category: &cat}); !errors.Is(err, task.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
		got, _ := uc.Detail(ctx, created.ID)
		if got.Category != model.CategoryAcademics {
			t.Errorf("task mutated by rejected update")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()
	add(t, uc, "a", model.CategoryAcademics)
	w := add(t, uc, "b", model.CategoryWellness)
	add(t, uc, "c", model.CategoryAcademics)
	uc.ToggleCompletion(ctx, w.ID)

	out, _ := uc.List(ctx, task.ListInput{Category: model.CategoryAcademics})
	if out.Total != 2 || out.Tasks[0].Title != "a" {
		t.Errorf("unexpected academics list %+v", out)
	}

	open := false
	out, _ = uc.List(ctx, task.ListInput{Completed: &open})
	if out.Total != 2 {
		t.Errorf("expected 2 open tasks, got %d", out.Total)
	}
}

func TestUpdateMetrics(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	energy, stress := 40, 70
	got, err := uc.UpdateMetrics(ctx, task.UpdateMetricsInput{Energy: &energy, Stress: &stress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Energy != 40 || got.Stress != 70 || got.BurnoutRisk != model.BurnoutLow {
		t.Errorf("unexpected metrics %+v", got)
	}

	bad := 101
	if _, err := uc.UpdateMetrics(ctx, task.UpdateMetricsInput{Energy: &bad}); !errors.Is(err, task.ErrInvalidMetric) {
		t.Errorf("expected ErrInvalidMetric, got %v", err)
	}
	if m, _ := uc.Metrics(ctx); m.Energy != 40 {
		t.Errorf("rejected update changed energy to %d", m.Energy)
	}
}
