package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
)

// SeasonService manages the season lifecycle. The league runs one active
// season at a time; starting a new season archives the current one.
type SeasonService struct {
	seasonRepo season.Repository
	matchRepo  match.Repository
	teamRepo   team.Repository
	cache      *cache.Store
}

func NewSeasonService(seasonRepo season.Repository, matchRepo match.Repository, teamRepo team.Repository, store *cache.Store) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		cache:      store,
	}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, name string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	name = strings.TrimSpace(name)
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

func (s *SeasonService) GetActive(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetActive")
	defer span.End()

	item, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}

	return item, nil
}

// Start registers a new season and makes it active. Any currently active
// season is archived with an end date of now.
func (s *SeasonService) Start(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Start")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, teamID := range item.TeamIDs {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return season.Season{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return season.Season{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
		}
	}

	_, exists, err := s.seasonRepo.GetByName(ctx, item.Name)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if exists {
		return season.Season{}, fmt.Errorf("%w: season=%s already exists", ErrConflict, item.Name)
	}

	current, active, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if active {
		now := time.Now().UTC()
		current.IsActive = false
		current.EndDate = &now
		if err := s.seasonRepo.Upsert(ctx, current); err != nil {
			return season.Season{}, fmt.Errorf("archive season: %w", err)
		}
	}

	item.IsActive = true
	item.EndDate = nil
	if err := s.seasonRepo.Upsert(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}

	return item, nil
}

// Delete removes an archived season together with its matches. The active
// season cannot be deleted.
func (s *SeasonService) Delete(ctx context.Context, name string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	item, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if item.IsActive {
		return fmt.Errorf("%w: the active season cannot be deleted", ErrConflict)
	}

	if err := s.matchRepo.DeleteBySeason(ctx, item.Name); err != nil {
		return fmt.Errorf("delete season matches: %w", err)
	}
	if err := s.seasonRepo.Delete(ctx, item.Name); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	invalidateSeason(ctx, s.cache, item.Name)

	return nil
}

// invalidateSeason drops every cached derived view for the season.
func invalidateSeason(ctx context.Context, store *cache.Store, seasonName string) {
	if store == nil {
		return
	}
	store.DeletePrefix(ctx, "standings:"+seasonName+":")
	store.DeletePrefix(ctx, "ratings:"+seasonName+":")
}
