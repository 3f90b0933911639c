package memory

import (
	"context"
	"sort"
	"time"

	"life-balance-planner/internal/model"
	repo "life-balance-planner/internal/recommendation/repository"
)

// CreateRecommendation stores a new recommendation.
func (r *implRepository) CreateRecommendation(ctx context.Context, opt repo.CreateRecommendationOptions) (model.AIRecommendation, error) {
	if opt.Recommendation.ID == "" {
		return model.AIRecommendation{}, repo.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.recs[opt.Recommendation.ID]; exists {
		return model.AIRecommendation{}, repo.ErrDuplicateID
	}
	r.nextSeq++
	r.recs[opt.Recommendation.ID] = entry{rec: opt.Recommendation, seq: r.nextSeq}
	return opt.Recommendation, nil
}

// GetRecommendation returns the recommendation with id or ErrNotFound.
func (r *implRepository) GetRecommendation(ctx context.Context, id string) (model.AIRecommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.recs[id]
	if !ok {
		return model.AIRecommendation{}, repo.ErrNotFound
	}
	return e.rec, nil
}

// ListRecommendations returns matches, newest first.
func (r *implRepository) ListRecommendations(ctx context.Context, opt repo.ListRecommendationsOptions) ([]model.AIRecommendation, error) {
	r.mu.RLock()
	entries := make([]entry, 0, len(r.recs))
	for _, e := range r.recs {
		if opt.Status != "" && e.rec.Status != opt.Status {
			continue
		}
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return newer(entries[i], entries[j]) })

	out := make([]model.AIRecommendation, len(entries))
	for i, e := range entries {
		out[i] = e.rec
	}
	return out, nil
}

// LatestRecommendation returns the most recently created recommendation.
func (r *implRepository) LatestRecommendation(ctx context.Context) (model.AIRecommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *entry
	for _, e := range r.recs {
		e := e
		if best == nil || newer(e, *best) {
			best = &e
		}
	}
	if best == nil {
		return model.AIRecommendation{}, repo.ErrNotFound
	}
	return best.rec, nil
}

// ResolveRecommendation applies the one-shot pending → accepted|dismissed move.
func (r *implRepository) ResolveRecommendation(ctx context.Context, opt repo.ResolveRecommendationOptions) (model.AIRecommendation, error) {
	if opt.Status != model.RecommendationAccepted && opt.Status != model.RecommendationDismissed {
		return model.AIRecommendation{}, repo.ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.recs[opt.ID]
	if !ok {
		return model.AIRecommendation{}, repo.ErrNotFound
	}
	if e.rec.Status != model.RecommendationPending {
		return model.AIRecommendation{}, repo.ErrAlreadyResolved
	}

	resolvedAt := opt.ResolvedAt
	e.rec.Status = opt.Status
	e.rec.ResolvedAt = &resolvedAt
	r.recs[opt.ID] = e
	return e.rec, nil
}

// DeleteCreatedBefore removes recommendations created before cutoff.
func (r *implRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.recs {
		if e.rec.CreatedAt.Before(cutoff) {
			delete(r.recs, id)
			removed++
		}
	}
	return removed, nil
}
