package memory

import (
	"context"
	"sync"

	"github.com/petiteligue/ligue-api/internal/domain/rating"
)

// RatingRepository stores replay snapshots. It is a materialized view; the
// rating service treats match history as the only ground truth.
type RatingRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]rating.TeamRating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{bySeason: make(map[string][]rating.TeamRating)}
}

func (r *RatingRepository) ListBySeason(_ context.Context, season string) ([]rating.TeamRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := r.bySeason[season]
	out := make([]rating.TeamRating, len(snapshot))
	copy(out, snapshot)

	return out, nil
}

func (r *RatingRepository) ReplaceBySeason(_ context.Context, season string, ratings []rating.TeamRating) error {
	snapshot := make([]rating.TeamRating, len(ratings))
	copy(snapshot, ratings)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySeason[season] = snapshot
	return nil
}
