package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"life-balance-planner/internal/model"
	repo "life-balance-planner/internal/recommendation/repository"
	"life-balance-planner/internal/recommendation/repository/memory"
)

func create(t *testing.T, r repo.Repository, id string, at time.Time) {
	t.Helper()
	_, err := r.CreateRecommendation(context.Background(), repo.CreateRecommendationOptions{
		Recommendation: model.AIRecommendation{ID: id, Status: model.RecommendationPending, CreatedAt: at},
	})
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
}

func TestLatestRecommendation(t *testing.T) {
	ctx := context.Background()
	r := memory.New()

	if _, err := r.LatestRecommendation(ctx); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	at := time.Date(2024, 12, 19, 9, 0, 0, 0, time.UTC)
	create(t, r, "old", at.Add(-time.Hour))
	create(t, r, "first", at)
	create(t, r, "second", at) // same timestamp, created later

	latest, err := r.LatestRecommendation(ctx)
	if err != nil || latest.ID != "second" {
		t.Errorf("latest = %q, %v; want second", latest.ID, err)
	}

	list, _ := r.ListRecommendations(ctx, repo.ListRecommendationsOptions{})
	if len(list) != 3 || list[0].ID != "second" || list[1].ID != "first" || list[2].ID != "old" {
		t.Errorf("unexpected order: %v", ids(list))
	}
}

func TestResolveRecommendation(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	create(t, r, "a", time.Now())

	got, err := r.ResolveRecommendation(ctx, repo.ResolveRecommendationOptions{ID: "a", Status: model.RecommendationAccepted, ResolvedAt: time.Now()})
	if err != nil || got.Status != model.RecommendationAccepted || got.ResolvedAt == nil {
		t.Fatalf("resolve = %+v, %v", got, err)
	}

	_, err = r.ResolveRecommendation(ctx, repo.ResolveRecommendationOptions{ID: "a", Status: model.RecommendationDismissed})
	if !errors.Is(err, repo.ErrAlreadyResolved) {
		t.Errorf("expected ErrAlreadyResolved, got %v", err)
	}
	_, err = r.ResolveRecommendation(ctx, repo.ResolveRecommendationOptions{ID: "a", Status: model.RecommendationPending})
	if !errors.Is(err, repo.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	_, err = r.ResolveRecommendation(ctx, repo.ResolveRecommendationOptions{ID: "missing", Status: model.RecommendationDismissed})
	if !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	pending, _ := r.ListRecommendations(ctx, repo.ListRecommendationsOptions{Status: model.RecommendationPending})
	if len(pending) != 0 {
		t.Errorf("expected no pending recommendations, got %v", ids(pending))
	}
}

func TestDeleteCreatedBefore(t *testing.T) {
	ctx := context.Background()
	r := memory.New()
	now := time.Now()
	create(t, r, "ancient", now.Add(-40*24*time.Hour))
	create(t, r, "recent", now.Add(-time.Hour))

	n, err := r.DeleteCreatedBefore(ctx, now.Add(-30*24*time.Hour))
	if err != nil || n != 1 {
		t.Fatalf("removed = %d, %v", n, err)
	}
	if _, err := r.GetRecommendation(ctx, "ancient"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ancient to be removed")
	}
	if _, err := r.GetRecommendation(ctx, "recent"); err != nil {
		t.Errorf("recent should survive: %v", err)
	}
}

func ids(recs []model.AIRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}
