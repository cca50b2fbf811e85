package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/standings"
	"github.com/petiteligue/ligue-api/internal/infrastructure/repository/memory"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
)

func newStandingsService() (*StandingsService, *memory.MatchRepository) {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	service := NewStandingsService(
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewTeamRepository(memory.SeedTeams()),
		matchRepo,
		cache.NewStore(time.Minute),
	)
	return service, matchRepo
}

func TestStandingsService_Table_FullView(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsService()

	entries, err := service.Table(context.Background(), memory.SeedSeasonName, standings.Options{})
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	// Seed data: team 1 on 7 points, team 2 on 6, team 3 on 2, team 4 on 1.
	wantOrder := []int64{1, 2, 3, 4}
	wantPoints := []int{7, 6, 2, 1}
	for i, entry := range entries {
		if entry.Team.ID != wantOrder[i] {
			t.Fatalf("rank %d team = %d, want %d", i+1, entry.Team.ID, wantOrder[i])
		}
		if entry.Row.Points != wantPoints[i] {
			t.Fatalf("rank %d points = %d, want %d", i+1, entry.Row.Points, wantPoints[i])
		}
		if entry.Rank != i+1 {
			t.Fatalf("rank field = %d, want %d", entry.Rank, i+1)
		}
	}

	leader := entries[0]
	if len(leader.RecentForm) != 3 {
		t.Fatalf("leader form has %d results, want 3", len(leader.RecentForm))
	}
	if leader.RecentForm[0] != rating.ResultWin || leader.RecentForm[2] != rating.ResultDraw {
		t.Fatalf("unexpected leader form: %v", leader.RecentForm)
	}
	if leader.Streak.Text != "Nx1" {
		t.Fatalf("leader streak = %q, want Nx1", leader.Streak.Text)
	}
}

func TestStandingsService_Table_IsCachedPerFilterSet(t *testing.T) {
	t.Parallel()

	service, matchRepo := newStandingsService()
	ctx := context.Background()

	before, err := service.Table(ctx, memory.SeedSeasonName, standings.Options{})
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}

	// Deleting behind the service's back must not change the cached table.
	if err := matchRepo.DeleteBySeason(ctx, memory.SeedSeasonName); err != nil {
		t.Fatalf("DeleteBySeason error: %v", err)
	}

	after, err := service.Table(ctx, memory.SeedSeasonName, standings.Options{})
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	if after[0].Row.Points != before[0].Row.Points {
		t.Fatal("cached table was rebuilt")
	}

	// A different filter set misses the cache and sees the empty history.
	homeOnly, err := service.Table(ctx, memory.SeedSeasonName, standings.Options{Location: standings.LocationHome})
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	for _, entry := range homeOnly {
		if entry.Row.Played != 0 {
			t.Fatalf("expected empty home table, got %+v", entry.Row)
		}
	}
}

func TestStandingsService_Table_InvertedWindow(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsService()

	_, err := service.Table(context.Background(), memory.SeedSeasonName, standings.Options{FromMatchDay: 3, UpToMatchDay: 2})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestStandingsService_Form_TeamOutsideSeason(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsService()

	_, err := service.Form(context.Background(), memory.SeedSeasonName, 99, standings.Options{}, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestStandingsService_Streak_HomeOnly(t *testing.T) {
	t.Parallel()

	service, _ := newStandingsService()

	streak, err := service.Streak(context.Background(), memory.SeedSeasonName, 1, standings.Options{Location: standings.LocationHome})
	if err != nil {
		t.Fatalf("Streak error: %v", err)
	}
	// Team 1 at home: 2-0 on matchday 1, 2-2 on matchday 3.
	if streak.Text != "Nx1" {
		t.Fatalf("streak = %q, want Nx1", streak.Text)
	}
}
