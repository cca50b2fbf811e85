package rating

import (
	"testing"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/team"
)

func TestActualScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		goalsFor, goalsAgainst int
		want                   float64
	}{
		{2, 0, 1},
		{1, 1, 0.5},
		{0, 3, 0},
	}
	for _, tc := range cases {
		if got := ActualScore(tc.goalsFor, tc.goalsAgainst); got != tc.want {
			t.Fatalf("ActualScore(%d, %d) = %v, want %v", tc.goalsFor, tc.goalsAgainst, got, tc.want)
		}
	}
}

func TestGoalDifferenceMultiplier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		diff int
		want float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.5},
		{3, 1.75},
		{4, 1.875},
		{5, 2.0},
		{10, 2.0},
		{-2, 1.5},
	}
	for _, tc := range cases {
		if got := GoalDifferenceMultiplier(tc.diff); got != tc.want {
			t.Fatalf("GoalDifferenceMultiplier(%d) = %v, want %v", tc.diff, got, tc.want)
		}
	}

	prev := 0.0
	for diff := 0; diff <= 12; diff++ {
		got := GoalDifferenceMultiplier(diff)
		if got < prev {
			t.Fatalf("multiplier decreased at diff=%d: %v < %v", diff, got, prev)
		}
		prev = got
	}
}

func TestExpectedScore_EqualRatings(t *testing.T) {
	t.Parallel()

	if got := ExpectedScore(1500, 1500); got != 0.5 {
		t.Fatalf("ExpectedScore(1500, 1500) = %v, want 0.5", got)
	}
}

func testRoster() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Olympique Nord", ShortName: "OLN", City: "Lille"},
		{ID: 2, Name: "Racing Sud", ShortName: "RCS", City: "Toulon"},
		{ID: 3, Name: "Stade Ouest", ShortName: "STO", City: "Brest"},
	}
}

func playedMatch(id int64, day int, home, away int64, homeGoals, awayGoals int) match.Match {
	return match.Match{
		ID:         id,
		Season:     "2025-2026",
		MatchDay:   day,
		Date:       time.Date(2025, 8, day, 20, 0, 0, 0, time.UTC),
		HomeTeamID: home,
		AwayTeamID: away,
		FinalScore: &match.Score{Home: homeGoals, Away: awayGoals},
	}
}

func TestReplay_HomeWinTwoNil(t *testing.T) {
	t.Parallel()

	ratings, skipped := Replay(testRoster(), []match.Match{
		playedMatch(10, 1, 1, 2, 2, 0),
	})
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped matches: %+v", skipped)
	}

	// Both at 1500, +100 home advantage gives the home side an expectation
	// of ~0.64; d=2 means a 1.5 multiplier, so both deltas round to 17.
	home, away := ratings[1], ratings[2]
	if home.Rating != 1517 {
		t.Fatalf("home rating = %d, want 1517", home.Rating)
	}
	if away.Rating != 1483 {
		t.Fatalf("away rating = %d, want 1483", away.Rating)
	}

	if len(home.History) != 1 || len(away.History) != 1 {
		t.Fatalf("expected one event per side, got %d and %d", len(home.History), len(away.History))
	}
	event := home.History[0]
	if event.Change != 17 || event.Result != ResultWin || event.Opponent != "Racing Sud" {
		t.Fatalf("unexpected home event: %+v", event)
	}
	if event.Multiplier != 1.5 {
		t.Fatalf("home event multiplier = %v, want 1.5", event.Multiplier)
	}
	if away.History[0].Change != -17 || away.History[0].Result != ResultLoss {
		t.Fatalf("unexpected away event: %+v", away.History[0])
	}
}

func TestReplay_Deterministic(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 2, 2, 3, 1, 1),
		playedMatch(2, 1, 1, 2, 2, 0),
		playedMatch(3, 3, 3, 1, 0, 4),
	}

	first, _ := Replay(testRoster(), matches)
	second, _ := Replay(testRoster(), matches)

	for id, want := range first {
		got := second[id]
		if got.Rating != want.Rating {
			t.Fatalf("team %d rating differs between replays: %d vs %d", id, got.Rating, want.Rating)
		}
		if len(got.History) != len(want.History) {
			t.Fatalf("team %d history length differs", id)
		}
		for i := range want.History {
			if got.History[i] != want.History[i] {
				t.Fatalf("team %d event %d differs: %+v vs %+v", id, i, got.History[i], want.History[i])
			}
		}
	}
}

func TestReplay_OrdersByMatchDayThenDate(t *testing.T) {
	t.Parallel()

	// Fed out of order: matchday 2 first. Replay must apply matchday 1 first.
	matches := []match.Match{
		playedMatch(2, 2, 2, 1, 1, 0),
		playedMatch(1, 1, 1, 2, 3, 0),
	}

	ratings, _ := Replay(testRoster(), matches)
	history := ratings[1].History
	if len(history) != 2 {
		t.Fatalf("expected 2 events, got %d", len(history))
	}
	if history[0].MatchDay != 1 || history[1].MatchDay != 2 {
		t.Fatalf("events out of order: %+v", history)
	}
}

func TestReplay_SkipsUnknownTeamAndMissingScore(t *testing.T) {
	t.Parallel()

	noScore := playedMatch(2, 2, 1, 2, 0, 0)
	noScore.FinalScore = nil

	ratings, skipped := Replay(testRoster(), []match.Match{
		playedMatch(1, 1, 1, 99, 2, 0),
		noScore,
	})

	if len(skipped) != 2 {
		t.Fatalf("expected 2 skipped matches, got %+v", skipped)
	}
	for _, r := range ratings {
		if r.Rating != InitialRating || len(r.History) != 0 {
			t.Fatalf("ratings affected by skipped matches: %+v", r)
		}
	}
}

func TestReplay_DeltasBalanceWithinRounding(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 2, 0),
		playedMatch(2, 2, 3, 1, 1, 3),
		playedMatch(3, 3, 2, 3, 5, 0),
	}
	ratings, _ := Replay(testRoster(), matches)

	total := 0
	for _, r := range ratings {
		total += r.Rating - InitialRating
	}
	// Each match's two deltas are computed before independent rounding, so
	// the drift is at most 1 point per match.
	if total < -len(matches) || total > len(matches) {
		t.Fatalf("rating deltas drift too far: %d", total)
	}
}
