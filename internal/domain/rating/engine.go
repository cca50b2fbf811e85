package rating

import (
	"math"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/team"
)

const (
	// InitialRating is the rating every team starts a replay from.
	InitialRating = 1500
	// KFactor caps the rating swing of a single match before multipliers.
	KFactor = 32
	// HomeAdvantage is added to the home side's rating when computing the
	// expectation only; the stored rating is never adjusted.
	HomeAdvantage = 100

	maxGoalDiffMultiplier = 2.0
)

// ExpectedScore returns the probability that a team rated ratingA beats a
// team rated ratingB under the standard logistic curve.
func ExpectedScore(ratingA, ratingB int) float64 {
	return 1 / (1 + math.Pow(10, float64(ratingB-ratingA)/400))
}

// ActualScore maps a final score to the 1 / 0.5 / 0 scale.
func ActualScore(goalsFor, goalsAgainst int) float64 {
	switch {
	case goalsFor > goalsAgainst:
		return 1
	case goalsFor < goalsAgainst:
		return 0
	default:
		return 0.5
	}
}

// GoalDifferenceMultiplier scales the rating swing by margin of victory.
// Monotonically non-decreasing, capped at 2.0.
func GoalDifferenceMultiplier(diff int) float64 {
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 1:
		return 1.0
	case diff == 2:
		return 1.5
	case diff == 3:
		return 1.75
	default:
		return math.Min(maxGoalDiffMultiplier, 1.75+float64(diff-3)*0.125)
	}
}

func resultFor(goalsFor, goalsAgainst int) Result {
	switch {
	case goalsFor > goalsAgainst:
		return ResultWin
	case goalsFor < goalsAgainst:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// SkippedMatch records a match the replay could not process and why.
type SkippedMatch struct {
	MatchID int64
	Reason  string
}

// Replay derives every team's rating from scratch: all teams reset to
// InitialRating with empty histories, then the matches are applied in
// (matchDay, date) order. This full replay is the canonical derivation;
// persisted ratings are never trusted as ground truth. Matches referencing
// unknown teams or lacking a final score are skipped and reported.
func Replay(roster []team.Team, matches []match.Match) (map[int64]*TeamRating, []SkippedMatch) {
	ratings := make(map[int64]*TeamRating, len(roster))
	names := make(map[int64]string, len(roster))
	for _, t := range roster {
		ratings[t.ID] = &TeamRating{TeamID: t.ID, Rating: InitialRating}
		names[t.ID] = t.Name
	}

	ordered := make([]match.Match, len(matches))
	copy(ordered, matches)
	match.SortChronological(ordered)

	var skipped []SkippedMatch
	for _, m := range ordered {
		home, okHome := ratings[m.HomeTeamID]
		away, okAway := ratings[m.AwayTeamID]
		if !okHome || !okAway {
			skipped = append(skipped, SkippedMatch{MatchID: m.ID, Reason: "team missing from roster"})
			continue
		}
		if m.FinalScore == nil {
			skipped = append(skipped, SkippedMatch{MatchID: m.ID, Reason: "no final score"})
			continue
		}

		applyMatch(home, away, m, names)
	}

	return ratings, skipped
}

func applyMatch(home, away *TeamRating, m match.Match, names map[int64]string) {
	score := *m.FinalScore
	multiplier := GoalDifferenceMultiplier(score.Home - score.Away)

	expectedHome := ExpectedScore(home.Rating+HomeAdvantage, away.Rating)
	expectedAway := 1 - expectedHome

	homeDelta := roundDelta(KFactor * multiplier * (ActualScore(score.Home, score.Away) - expectedHome))
	awayDelta := roundDelta(KFactor * multiplier * (ActualScore(score.Away, score.Home) - expectedAway))

	home.Rating += homeDelta
	away.Rating += awayDelta

	home.History = append(home.History, Event{
		MatchDay:     m.MatchDay,
		Rating:       home.Rating,
		Change:       homeDelta,
		Opponent:     names[away.TeamID],
		Result:       resultFor(score.Home, score.Away),
		GoalsFor:     score.Home,
		GoalsAgainst: score.Away,
		Multiplier:   multiplier,
	})
	away.History = append(away.History, Event{
		MatchDay:     m.MatchDay,
		Rating:       away.Rating,
		Change:       awayDelta,
		Opponent:     names[home.TeamID],
		Result:       resultFor(score.Away, score.Home),
		GoalsFor:     score.Away,
		GoalsAgainst: score.Home,
		Multiplier:   multiplier,
	})
}

// roundDelta rounds to the nearest integer, halves away from zero.
func roundDelta(v float64) int {
	return int(math.Round(v))
}
