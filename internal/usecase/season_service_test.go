package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/infrastructure/repository/memory"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
)

func newSeasonService() (*SeasonService, *memory.SeasonRepository, *memory.MatchRepository) {
	seasonRepo := memory.NewSeasonRepository(memory.SeedSeasons())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	return NewSeasonService(seasonRepo, matchRepo, teamRepo, cache.NewStore(time.Minute)), seasonRepo, matchRepo
}

func TestSeasonService_Start_ArchivesActiveSeason(t *testing.T) {
	t.Parallel()

	service, seasonRepo, _ := newSeasonService()
	ctx := context.Background()

	started, err := service.Start(ctx, season.Season{
		Name:      "2026-2027",
		StartDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		TeamIDs:   []int64{1, 2, 3, 4},
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if !started.IsActive {
		t.Fatal("started season must be active")
	}

	previous, _, err := seasonRepo.GetByName(ctx, memory.SeedSeasonName)
	if err != nil {
		t.Fatalf("GetByName error: %v", err)
	}
	if previous.IsActive {
		t.Fatal("previous season still active")
	}
	if previous.EndDate == nil {
		t.Fatal("archived season has no end date")
	}

	active, err := service.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive error: %v", err)
	}
	if active.Name != "2026-2027" {
		t.Fatalf("active season = %s, want 2026-2027", active.Name)
	}
}

func TestSeasonService_Start_RejectsDuplicateName(t *testing.T) {
	t.Parallel()

	service, _, _ := newSeasonService()

	_, err := service.Start(context.Background(), season.Season{
		Name:      memory.SeedSeasonName,
		StartDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		TeamIDs:   []int64{1, 2},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
}

func TestSeasonService_Start_RejectsUnknownTeam(t *testing.T) {
	t.Parallel()

	service, _, _ := newSeasonService()

	_, err := service.Start(context.Background(), season.Season{
		Name:      "2026-2027",
		StartDate: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC),
		TeamIDs:   []int64{1, 99},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSeasonService_Delete_RefusesActiveSeason(t *testing.T) {
	t.Parallel()

	service, _, _ := newSeasonService()

	err := service.Delete(context.Background(), memory.SeedSeasonName)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
}

func TestSeasonService_Delete_CascadesMatches(t *testing.T) {
	t.Parallel()

	service, seasonRepo, matchRepo := newSeasonService()
	ctx := context.Background()

	archived := season.Season{
		Name:      memory.SeedSeasonName,
		StartDate: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
		TeamIDs:   []int64{1, 2, 3, 4},
	}
	if err := seasonRepo.Upsert(ctx, archived); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	if err := service.Delete(ctx, memory.SeedSeasonName); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, exists, _ := seasonRepo.GetByName(ctx, memory.SeedSeasonName); exists {
		t.Fatal("season still present after delete")
	}
	matches, err := matchRepo.ListBySeason(ctx, memory.SeedSeasonName)
	if err != nil {
		t.Fatalf("ListBySeason error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches after cascade, got %d", len(matches))
	}
}
