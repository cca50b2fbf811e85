package usecase

import (
	"context"
	"fmt"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
)

// MatchService records and corrects results. Every mutation invalidates the
// season's cached standings and ratings so the next read replays from the
// updated history.
type MatchService struct {
	matchRepo  match.Repository
	seasonRepo season.Repository
	teamRepo   team.Repository
	cache      *cache.Store
}

func NewMatchService(matchRepo match.Repository, seasonRepo season.Repository, teamRepo team.Repository, store *cache.Store) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		cache:      store,
	}
}

// ListBySeason returns a season's matches in chronological order, optionally
// restricted to a matchday window. Zero bounds leave that side open.
func (s *MatchService) ListBySeason(ctx context.Context, seasonName string, fromMatchDay, upToMatchDay int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListBySeason")
	defer span.End()

	if fromMatchDay < 0 || upToMatchDay < 0 {
		return nil, fmt.Errorf("%w: matchday bounds must be non-negative", ErrInvalidInput)
	}
	if upToMatchDay > 0 && fromMatchDay > upToMatchDay {
		return nil, fmt.Errorf("%w: matchday window is inverted", ErrInvalidInput)
	}
	if _, err := s.requireSeason(ctx, seasonName); err != nil {
		return nil, err
	}

	items, err := s.matchRepo.ListBySeason(ctx, seasonName)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if fromMatchDay == 0 && upToMatchDay == 0 {
		return items, nil
	}

	filtered := items[:0]
	for _, item := range items {
		if fromMatchDay > 0 && item.MatchDay < fromMatchDay {
			continue
		}
		if upToMatchDay > 0 && item.MatchDay > upToMatchDay {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	return item, nil
}

// Upsert records a new match or corrects an existing one. Both teams must
// be registered with the match's season.
func (s *MatchService) Upsert(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Upsert")
	defer span.End()

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seasonItem, err := s.requireSeason(ctx, item.Season)
	if err != nil {
		return match.Match{}, err
	}
	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		if !seasonItem.HasTeam(teamID) {
			return match.Match{}, fmt.Errorf("%w: team %d is not registered for season %s", ErrInvalidInput, teamID, item.Season)
		}
	}

	match.SortGoals(item.Goals)
	stored, err := s.matchRepo.Upsert(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}
	invalidateSeason(ctx, s.cache, stored.Season)

	return stored, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	invalidateSeason(ctx, s.cache, item.Season)

	return nil
}

func (s *MatchService) requireSeason(ctx context.Context, name string) (season.Season, error) {
	if name == "" {
		return season.Season{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByName(ctx, name)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, name)
	}

	return item, nil
}
