package standings

import (
	"testing"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
)

func TestForm_LastFiveOldestFirst(t *testing.T) {
	t.Parallel()

	// From team 1's perspective: V D N V V N across matchdays 1-6.
	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 2, 0),
		playedMatch(2, 2, 2, 1, 1, 0),
		playedMatch(3, 3, 1, 3, 1, 1),
		playedMatch(4, 4, 3, 1, 0, 2),
		playedMatch(5, 5, 1, 2, 3, 1),
		playedMatch(6, 6, 2, 1, 2, 2),
	}

	got := Form(1, matches, Options{}, 5)
	want := []rating.Result{
		rating.ResultLoss,
		rating.ResultDraw,
		rating.ResultWin,
		rating.ResultWin,
		rating.ResultDraw,
	}
	if len(got) != len(want) {
		t.Fatalf("form length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("form[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestForm_ShortHistory(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 1, 0),
		playedMatch(2, 2, 2, 1, 0, 0),
	}

	got := Form(1, matches, Options{}, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %v", got)
	}
	if got[0] != rating.ResultWin || got[1] != rating.ResultDraw {
		t.Fatalf("unexpected form: %v", got)
	}
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 0, 1), // loss
		playedMatch(2, 2, 1, 3, 2, 0), // win
		playedMatch(3, 3, 2, 1, 0, 3), // win
	}

	streak := CurrentStreak(1, matches, Options{})
	if streak.Type != rating.ResultWin || streak.Count != 2 {
		t.Fatalf("unexpected streak: %+v", streak)
	}
	if streak.Text != "Vx2" {
		t.Fatalf("streak text = %q, want Vx2", streak.Text)
	}
}

func TestCurrentStreak_NoQualifyingMatches(t *testing.T) {
	t.Parallel()

	streak := CurrentStreak(1, nil, Options{})
	if streak.Type != "" || streak.Count != 0 || streak.Text != "-" {
		t.Fatalf("unexpected empty streak: %+v", streak)
	}
}

func TestCurrentStreak_LocationFilter(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		playedMatch(1, 1, 1, 2, 2, 0), // home win
		playedMatch(2, 2, 2, 1, 1, 0), // away loss
		playedMatch(3, 3, 1, 3, 3, 0), // home win
	}

	streak := CurrentStreak(1, matches, Options{Location: LocationHome})
	if streak.Type != rating.ResultWin || streak.Count != 2 {
		t.Fatalf("home-only streak wrong: %+v", streak)
	}

	streak = CurrentStreak(1, matches, Options{Location: LocationAway})
	if streak.Type != rating.ResultLoss || streak.Count != 1 {
		t.Fatalf("away-only streak wrong: %+v", streak)
	}
}

func TestForm_UsesFinalScoreNotView(t *testing.T) {
	t.Parallel()

	// Goal detail says the first half was 0-1, but form always reads the
	// full-match final score.
	goals := []match.Goal{
		{TeamID: 2, Scorer: "Keita", Minute: 20},
		{TeamID: 1, Scorer: "Marchand", Minute: 60},
		{TeamID: 1, Scorer: "Varela", Minute: 88},
	}
	matches := []match.Match{playedMatch(1, 1, 1, 2, 2, 1, goals...)}

	got := Form(1, matches, Options{View: ViewFirstHalf}, 5)
	if len(got) != 1 || got[0] != rating.ResultWin {
		t.Fatalf("form should use final score: %v", got)
	}
}
