package standings

import (
	"testing"
	"time"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/team"
)

func testRoster() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Olympique Nord", ShortName: "OLN"},
		{ID: 2, Name: "Racing Sud", ShortName: "RCS"},
		{ID: 3, Name: "Stade Ouest", ShortName: "STO"},
	}
}

func playedMatch(id int64, day int, home, away int64, homeGoals, awayGoals int, goals ...match.Goal) match.Match {
	return match.Match{
		ID:         id,
		Season:     "2025-2026",
		MatchDay:   day,
		Date:       time.Date(2025, 9, day, 15, 0, 0, 0, time.UTC),
		HomeTeamID: home,
		AwayTeamID: away,
		FinalScore: &match.Score{Home: homeGoals, Away: awayGoals},
		Goals:      goals,
	}
}

func TestBuild_FullView(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 2, 1),
		playedMatch(2, 1, 3, 1, 1, 1),
		playedMatch(3, 2, 2, 3, 0, 3),
	}

	rows := Build(testRoster(), matches, Options{})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Team 1: W D -> 4 pts; team 3: D W -> 4 pts but better goal difference;
	// team 2: two losses.
	if rows[0].TeamID != 3 || rows[0].Points != 4 || rows[0].GoalDifference != 3 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].TeamID != 1 || rows[1].Points != 4 {
		t.Fatalf("unexpected runner-up: %+v", rows[1])
	}
	if rows[2].TeamID != 2 || rows[2].Points != 0 || rows[2].Played != 2 {
		t.Fatalf("unexpected bottom row: %+v", rows[2])
	}
}

func TestBuild_MatchDayWindow(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 5, 0),
		playedMatch(2, 2, 2, 1, 1, 0),
		playedMatch(3, 3, 1, 3, 2, 2),
		playedMatch(4, 4, 3, 2, 0, 1),
	}

	rows := Build(testRoster(), matches, Options{FromMatchDay: 2, UpToMatchDay: 3})
	byTeam := make(map[int64]Row, len(rows))
	for _, row := range rows {
		byTeam[row.TeamID] = row
	}

	// Matchdays 2 and 3 only: matchday 1 thrashing and matchday 4 excluded.
	if byTeam[1].Played != 2 || byTeam[1].Points != 1 {
		t.Fatalf("team 1 window stats wrong: %+v", byTeam[1])
	}
	if byTeam[2].Played != 1 || byTeam[2].Points != 3 {
		t.Fatalf("team 2 window stats wrong: %+v", byTeam[2])
	}
	if byTeam[3].Played != 1 || byTeam[3].Points != 1 {
		t.Fatalf("team 3 window stats wrong: %+v", byTeam[3])
	}
}

func TestBuild_LocationFilter(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 2, 0),
		playedMatch(2, 2, 2, 1, 3, 0),
	}

	rows := Build(testRoster(), matches, Options{Location: LocationHome})
	byTeam := make(map[int64]Row, len(rows))
	for _, row := range rows {
		byTeam[row.TeamID] = row
	}

	if byTeam[1].Played != 1 || byTeam[1].Won != 1 {
		t.Fatalf("team 1 home-only stats wrong: %+v", byTeam[1])
	}
	if byTeam[2].Played != 1 || byTeam[2].Won != 1 {
		t.Fatalf("team 2 home-only stats wrong: %+v", byTeam[2])
	}

	rows = Build(testRoster(), matches, Options{Location: LocationAway})
	byTeam = make(map[int64]Row, len(rows))
	for _, row := range rows {
		byTeam[row.TeamID] = row
	}
	if byTeam[1].Played != 1 || byTeam[1].Lost != 1 {
		t.Fatalf("team 1 away-only stats wrong: %+v", byTeam[1])
	}
}

func TestBuild_HalfViews(t *testing.T) {
	t.Parallel()

	// 2-1 final: home goals at 30' and 75', away goal at 44'.
	goals := []match.Goal{
		{TeamID: 1, Scorer: "Marchand", Minute: 30},
		{TeamID: 2, Scorer: "Keita", Minute: 44},
		{TeamID: 1, Scorer: "Varela", Minute: 75},
	}
	matches := []match.Match{playedMatch(1, 1, 1, 2, 2, 1, goals...)}

	first := Build(testRoster(), matches, Options{View: ViewFirstHalf})
	byTeam := make(map[int64]Row, len(first))
	for _, row := range first {
		byTeam[row.TeamID] = row
	}
	// First half was 1-1: a draw for both sides.
	if byTeam[1].Drawn != 1 || byTeam[1].GoalsFor != 1 || byTeam[1].GoalsAgainst != 1 {
		t.Fatalf("first-half home row wrong: %+v", byTeam[1])
	}

	second := Build(testRoster(), matches, Options{View: ViewSecondHalf})
	byTeam = make(map[int64]Row, len(second))
	for _, row := range second {
		byTeam[row.TeamID] = row
	}
	// Second half was 1-0 for the home side.
	if byTeam[1].Won != 1 || byTeam[1].GoalsFor != 1 || byTeam[1].GoalsAgainst != 0 {
		t.Fatalf("second-half home row wrong: %+v", byTeam[1])
	}
	if byTeam[2].Lost != 1 {
		t.Fatalf("second-half away row wrong: %+v", byTeam[2])
	}
}

func TestBuild_NoStoppageView(t *testing.T) {
	t.Parallel()

	// Home wins 2-1 but the second home goal came in 90+4.
	goals := []match.Goal{
		{TeamID: 1, Scorer: "Marchand", Minute: 12},
		{TeamID: 2, Scorer: "Keita", Minute: 67},
		{TeamID: 1, Scorer: "Varela", Minute: 90, ExtraTime: 4},
	}
	withDetail := playedMatch(1, 1, 1, 2, 2, 1, goals...)
	// No goal detail recorded: final score is authoritative.
	withoutDetail := playedMatch(2, 2, 3, 2, 1, 0)

	rows := Build(testRoster(), []match.Match{withDetail, withoutDetail}, Options{View: ViewNoStoppage})
	byTeam := make(map[int64]Row, len(rows))
	for _, row := range rows {
		byTeam[row.TeamID] = row
	}

	// Without the stoppage-time winner the first match is a 1-1 draw.
	if byTeam[1].Drawn != 1 || byTeam[1].Won != 0 {
		t.Fatalf("stoppage goal still counted: %+v", byTeam[1])
	}
	if byTeam[3].Won != 1 {
		t.Fatalf("final-score fallback missing: %+v", byTeam[3])
	}
}

func TestBuild_SortOrderAndStability(t *testing.T) {
	t.Parallel()

	roster := []team.Team{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
		{ID: 4, Name: "D"},
	}
	// Teams 3 and 4 never play: identical zero rows must keep roster order.
	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 1, 0),
	}

	rows := Build(roster, matches, Options{})
	if rows[0].TeamID != 1 {
		t.Fatalf("winner should lead: %+v", rows[0])
	}
	if rows[1].TeamID != 3 || rows[2].TeamID != 4 {
		t.Fatalf("tied zero rows lost roster order: %+v", rows)
	}
}

func TestBuild_EmptyRoster(t *testing.T) {
	t.Parallel()

	rows := Build(nil, []match.Match{playedMatch(1, 1, 1, 2, 1, 0)}, Options{})
	if len(rows) != 0 {
		t.Fatalf("expected empty ranking, got %+v", rows)
	}
}
