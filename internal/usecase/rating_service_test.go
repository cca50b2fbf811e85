package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
	"github.com/petiteligue/ligue-api/internal/domain/season"
	"github.com/petiteligue/ligue-api/internal/domain/team"
	"github.com/petiteligue/ligue-api/internal/infrastructure/repository/memory"
	"github.com/petiteligue/ligue-api/internal/platform/cache"
	"github.com/petiteligue/ligue-api/internal/platform/logging"
)

const ratingTestSeason = "2025-2026"

func newRatingService(matches []match.Match) (*RatingService, *memory.MatchRepository, *memory.RatingRepository) {
	teams := []team.Team{
		{ID: 1, Name: "Olympique Nord", ShortName: "OLN"},
		{ID: 2, Name: "Racing Sud", ShortName: "RCS"},
	}
	seasons := []season.Season{{
		Name:      ratingTestSeason,
		StartDate: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		TeamIDs:   []int64{1, 2},
	}}

	matchRepo := memory.NewMatchRepository(matches)
	snapshotRepo := memory.NewRatingRepository()
	service := NewRatingService(
		memory.NewSeasonRepository(seasons),
		memory.NewTeamRepository(teams),
		matchRepo,
		snapshotRepo,
		cache.NewStore(time.Minute),
		logging.NewNop(),
	)
	return service, matchRepo, snapshotRepo
}

func homeWinTwoNil() match.Match {
	return match.Match{
		ID:         1,
		Season:     ratingTestSeason,
		MatchDay:   1,
		Date:       time.Date(2025, 8, 9, 19, 0, 0, 0, time.UTC),
		HomeTeamID: 1,
		AwayTeamID: 2,
		FinalScore: &match.Score{Home: 2, Away: 0},
	}
}

func TestRatingService_Rankings_HomeWinTwoNil(t *testing.T) {
	t.Parallel()

	service, _, snapshotRepo := newRatingService([]match.Match{homeWinTwoNil()})
	ctx := context.Background()

	entries, skipped, err := service.Rankings(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("Rankings error: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped matches: %+v", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Team.ID != 1 || entries[0].Rating != 1517 || entries[0].Rank != 1 {
		t.Fatalf("unexpected rank 1 entry: %+v", entries[0])
	}
	if entries[1].Team.ID != 2 || entries[1].Rating != 1483 || entries[1].Rank != 2 {
		t.Fatalf("unexpected rank 2 entry: %+v", entries[1])
	}

	snapshot, err := snapshotRepo.ListBySeason(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("ListBySeason error: %v", err)
	}
	if len(snapshot) != 2 {
		t.Fatalf("expected snapshot for 2 teams, got %d", len(snapshot))
	}
}

func TestRatingService_History(t *testing.T) {
	t.Parallel()

	service, _, _ := newRatingService([]match.Match{homeWinTwoNil()})

	history, err := service.History(context.Background(), ratingTestSeason, 2)
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 event, got %d", len(history))
	}

	event := history[0]
	if event.Result != rating.ResultLoss || event.Rating != 1483 || event.Change != -17 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Opponent != "Olympique Nord" {
		t.Fatalf("opponent = %s, want Olympique Nord", event.Opponent)
	}
}

func TestRatingService_Predict_EqualRatings(t *testing.T) {
	t.Parallel()

	service, _, _ := newRatingService(nil)

	prediction, err := service.Predict(context.Background(), ratingTestSeason, 1, 2)
	if err != nil {
		t.Fatalf("Predict error: %v", err)
	}
	if prediction.DrawPct != 25 {
		t.Fatalf("draw = %d, want 25", prediction.DrawPct)
	}
	sum := prediction.HomeWinPct + prediction.DrawPct + prediction.AwayWinPct
	if sum < 99 || sum > 101 {
		t.Fatalf("probabilities sum to %d", sum)
	}
	if prediction.HomeWinPct <= prediction.AwayWinPct {
		t.Fatal("home advantage must favor the home side at equal ratings")
	}
}

func TestRatingService_Predict_SameTeam(t *testing.T) {
	t.Parallel()

	service, _, _ := newRatingService(nil)

	_, err := service.Predict(context.Background(), ratingTestSeason, 1, 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestRatingService_Rankings_UnknownSeason(t *testing.T) {
	t.Parallel()

	service, _, _ := newRatingService(nil)

	_, _, err := service.Rankings(context.Background(), "1999-2000")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestRatingService_Rankings_ReportsSkippedMatches(t *testing.T) {
	t.Parallel()

	stranger := homeWinTwoNil()
	stranger.ID = 2
	stranger.MatchDay = 2
	stranger.AwayTeamID = 99

	service, _, _ := newRatingService([]match.Match{homeWinTwoNil(), stranger})

	_, skipped, err := service.Rankings(context.Background(), ratingTestSeason)
	if err != nil {
		t.Fatalf("Rankings error: %v", err)
	}
	if len(skipped) != 1 || skipped[0].MatchID != 2 {
		t.Fatalf("unexpected skipped matches: %+v", skipped)
	}
}

func TestRatingService_Recompute_BustsCache(t *testing.T) {
	t.Parallel()

	service, matchRepo, _ := newRatingService([]match.Match{homeWinTwoNil()})
	ctx := context.Background()

	entries, _, err := service.Rankings(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("Rankings error: %v", err)
	}
	if entries[0].Rating != 1517 {
		t.Fatalf("rating = %d, want 1517", entries[0].Rating)
	}

	// A second home win, written behind the service's back.
	followUp := homeWinTwoNil()
	followUp.ID = 2
	followUp.MatchDay = 2
	if _, err := matchRepo.Upsert(ctx, followUp); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	cached, _, err := service.Rankings(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("Rankings error: %v", err)
	}
	if cached[0].Rating != 1517 {
		t.Fatalf("cached rating = %d, want 1517", cached[0].Rating)
	}

	stats, err := service.Recompute(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("Recompute error: %v", err)
	}
	if stats.Teams != 2 {
		t.Fatalf("recompute covered %d teams, want 2", stats.Teams)
	}

	fresh, _, err := service.Rankings(ctx, ratingTestSeason)
	if err != nil {
		t.Fatalf("Rankings error: %v", err)
	}
	if fresh[0].Rating <= 1517 {
		t.Fatalf("rating = %d, want above 1517 after second win", fresh[0].Rating)
	}
	if len(fresh[0].Team.Name) == 0 {
		t.Fatal("entry lost its team record")
	}
}
