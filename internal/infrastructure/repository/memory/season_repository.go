package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/petiteligue/ligue-api/internal/domain/season"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons map[string]season.Season
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	byName := make(map[string]season.Season, len(seasons))
	for _, item := range seasons {
		byName[item.Name] = item
	}

	return &SeasonRepository{seasons: byName}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons))
	for _, item := range r.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })

	return out, nil
}

func (r *SeasonRepository) GetByName(_ context.Context, name string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[name]
	return item, ok, nil
}

func (r *SeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.seasons {
		if item.IsActive {
			return item, true, nil
		}
	}

	return season.Season{}, false, nil
}

func (r *SeasonRepository) Upsert(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons[item.Name] = item
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.seasons, name)
	return nil
}
