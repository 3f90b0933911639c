package memory_test

import (
	"context"
	"errors"
	"testing"

	"life-balance-planner/internal/model"
	repo "life-balance-planner/internal/task/repository"
	"life-balance-planner/internal/task/repository/memory"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	seed := []model.Task{
		{ID: "1", Title: "Essay", Category: model.CategoryAcademics},
		{ID: "2", Title: "Run", Category: model.CategoryWellness, Completed: true},
		{ID: "3", Title: "Lab report", Category: model.CategoryAcademics},
	}
	for _, task := range seed {
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{Task: task}); err != nil {
			t.Fatalf("create %s: %v", task.ID, err)
		}
	}

	t.Run("Create rejects duplicates and missing ids", func(t *testing.T) {
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{Task: model.Task{ID: "1"}}); !errors.Is(err, repo.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{}); !errors.Is(err, repo.ErrMissingID) {
			t.Errorf("expected ErrMissingID, got %v", err)
		}
	})

	t.Run("List keeps insertion order and filters", func(t *testing.T) {
		all, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
		if len(all) != 3 || all[0].ID != "1" || all[2].ID != "3" {
			t.Fatalf("unexpected order: %+v", all)
		}

		academics, _ := r.ListTasks(ctx, repo.ListTasksOptions{Category: model.CategoryAcademics})
		if len(academics) != 2 {
			t.Errorf("expected 2 academics, got %d", len(academics))
		}

		done := true
		completed, _ := r.ListTasks(ctx, repo.ListTasksOptions{Completed: &done})
		if len(completed) != 1 || completed[0].ID != "2" {
			t.Errorf("unexpected completed list: %+v", completed)
		}
	})

	t.Run("Update keeps position", func(t *testing.T) {
		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{Task: model.Task{ID: "1", Title: "Essay v2", Category: model.CategoryAcademics}}); err != nil {
			t.Fatalf("update: %v", err)
		}
		all, _ := r.ListTasks(ctx, repo.ListTasksOptions{})
		if all[0].Title != "Essay v2" {
			t.Errorf("expected updated title first, got %+v", all[0])
		}
		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{Task: model.Task{ID: "missing"}}); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := r.DeleteTask(ctx, "2"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := r.DeleteTask(ctx, "2"); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
		if n, _ := r.CountTasks(ctx); n != 2 {
			t.Errorf("expected 2 tasks, got %d", n)
		}
		if _, err := r.GetTask(ctx, "2"); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
