package usecase

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/standings"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
)

// StandingsService builds league tables under the requested view and
// filters. Tables are cached per season and filter set.
type StandingsService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	matchRepo  match.Repository
	cache      *cache.Store
}

func NewStandingsService(seasonRepo season.Repository, teamRepo team.Repository, matchRepo match.Repository, store *cache.Store) *StandingsService {
	return &StandingsService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		cache:      store,
	}
}

// TableEntry is one ranked standings row together with the team's recent
// form and current streak under the same filters.
type TableEntry struct {
	Rank       int
	Team       team.Team
	Row        standings.Row
	RecentForm []rating.Result
	Streak     standings.Streak
}

func (s *StandingsService) Table(ctx context.Context, seasonName string, opts standings.Options) ([]TableEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	if seasonName == "" {
		return nil, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if opts.FromMatchDay < 0 || opts.UpToMatchDay < 0 {
		return nil, fmt.Errorf("%w: matchday bounds cannot be negative", ErrInvalidInput)
	}
	if opts.FromMatchDay > 0 && opts.UpToMatchDay > 0 && opts.FromMatchDay > opts.UpToMatchDay {
		return nil, fmt.Errorf("%w: matchday window is inverted", ErrInvalidInput)
	}

	key := tableCacheKey(seasonName, opts)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.buildTable(ctx, seasonName, opts)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]TableEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry for %s", key)
	}

	return entries, nil
}

func (s *StandingsService) buildTable(ctx context.Context, seasonName string, opts standings.Options) ([]TableEntry, error) {
	seasonItem, exists, err := s.seasonRepo.GetByName(ctx, seasonName)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonName)
	}

	all, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	byID := make(map[int64]team.Team, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}

	roster := make([]team.Team, 0, len(seasonItem.TeamIDs))
	for _, teamID := range seasonItem.TeamIDs {
		if item, ok := byID[teamID]; ok {
			roster = append(roster, item)
		}
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonName)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	rows := standings.Build(roster, matches, opts)
	entries := make([]TableEntry, len(rows))
	for i, row := range rows {
		entries[i] = TableEntry{
			Rank: i + 1,
			Team: byID[row.TeamID],
			Row:  row,
		}
	}

	// Form and streak are independent per team.
	p := pool.New().WithMaxGoroutines(runtime.GOMAXPROCS(0))
	for i := range entries {
		i := i
		p.Go(func() {
			teamID := entries[i].Row.TeamID
			entries[i].RecentForm = standings.Form(teamID, matches, opts, standings.DefaultFormLimit)
			entries[i].Streak = standings.CurrentStreak(teamID, matches, opts)
		})
	}
	p.Wait()

	return entries, nil
}

// Form returns a team's recent results under the given filters, oldest
// first.
func (s *StandingsService) Form(ctx context.Context, seasonName string, teamID int64, opts standings.Options, limit int) ([]rating.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Form")
	defer span.End()

	matches, err := s.teamMatches(ctx, seasonName, teamID)
	if err != nil {
		return nil, err
	}

	return standings.Form(teamID, matches, opts, limit), nil
}

// Streak returns a team's current run of identical results under the given
// filters.
func (s *StandingsService) Streak(ctx context.Context, seasonName string, teamID int64, opts standings.Options) (standings.Streak, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Streak")
	defer span.End()

	matches, err := s.teamMatches(ctx, seasonName, teamID)
	if err != nil {
		return standings.Streak{}, err
	}

	return standings.CurrentStreak(teamID, matches, opts), nil
}

func (s *StandingsService) teamMatches(ctx context.Context, seasonName string, teamID int64) ([]match.Match, error) {
	if seasonName == "" {
		return nil, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	seasonItem, exists, err := s.seasonRepo.GetByName(ctx, seasonName)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonName)
	}
	if !seasonItem.HasTeam(teamID) {
		return nil, fmt.Errorf("%w: team %d is not part of season %s", ErrNotFound, teamID, seasonName)
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonName)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

func tableCacheKey(seasonName string, opts standings.Options) string {
	view := standings.ParseView(string(opts.View))
	location := standings.ParseLocation(string(opts.Location))
	return fmt.Sprintf("standings:%s:%s:%d-%d:%s", seasonName, view, opts.FromMatchDay, opts.UpToMatchDay, location)
}
