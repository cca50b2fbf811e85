package memory

import (
	"context"
	"sync"

	"github.com/petiteligue/ligue-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	nextID  int64
	matches map[int64]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[int64]match.Match, len(matches))
	var maxID int64
	for _, item := range matches {
		byID[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &MatchRepository{nextID: maxID + 1, matches: byID}
}

func (r *MatchRepository) ListBySeason(_ context.Context, season string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if item.Season == season {
			out = append(out, item)
		}
	}
	match.SortChronological(out)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Upsert(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	} else if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}
	r.matches[item.ID] = item

	return item, nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.matches, matchID)
	return nil
}

func (r *MatchRepository) DeleteBySeason(_ context.Context, season string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.matches {
		if item.Season == season {
			delete(r.matches, id)
		}
	}

	return nil
}
