package standings

import (
	"sort"
	"strconv"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/rating"
)

// DefaultFormLimit is how many recent results Form returns by default.
const DefaultFormLimit = 5

// Form returns the team's last `limit` results in chronological order
// (oldest first). Results always come from the full-match final score,
// regardless of any standings view. Matches are picked by descending
// matchday, truncated, then reversed for display.
func Form(teamID int64, matches []match.Match, opts Options, limit int) []rating.Result {
	if limit <= 0 {
		limit = DefaultFormLimit
	}

	qualifying := qualifyingMatches(teamID, matches, opts)
	if len(qualifying) > limit {
		qualifying = qualifying[:limit]
	}

	out := make([]rating.Result, 0, len(qualifying))
	for i := len(qualifying) - 1; i >= 0; i-- {
		out = append(out, resultForTeam(teamID, qualifying[i]))
	}
	return out
}

// CurrentStreak returns the unbroken run of identical results counting
// backward from the team's most recent qualifying match.
func CurrentStreak(teamID int64, matches []match.Match, opts Options) Streak {
	qualifying := qualifyingMatches(teamID, matches, opts)
	if len(qualifying) == 0 {
		return Streak{Text: "-"}
	}

	kind := resultForTeam(teamID, qualifying[0])
	count := 0
	for _, m := range qualifying {
		if resultForTeam(teamID, m) != kind {
			break
		}
		count++
	}

	return Streak{
		Type:  kind,
		Count: count,
		Text:  streakText(kind, count),
	}
}

// qualifyingMatches returns the team's played matches that pass the filters,
// most recent matchday first.
func qualifyingMatches(teamID int64, matches []match.Match, opts Options) []match.Match {
	opts.Location = normalizeLocation(opts.Location)
	if opts.FromMatchDay <= 0 {
		opts.FromMatchDay = 1
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Played() || !m.Involves(teamID) {
			continue
		}
		if m.MatchDay < opts.FromMatchDay {
			continue
		}
		if opts.UpToMatchDay > 0 && m.MatchDay > opts.UpToMatchDay {
			continue
		}
		if opts.Location == LocationHome && m.HomeTeamID != teamID {
			continue
		}
		if opts.Location == LocationAway && m.AwayTeamID != teamID {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchDay != out[j].MatchDay {
			return out[i].MatchDay > out[j].MatchDay
		}
		return out[i].Date.After(out[j].Date)
	})

	return out
}

func resultForTeam(teamID int64, m match.Match) rating.Result {
	goalsFor, goalsAgainst := m.FinalScore.Home, m.FinalScore.Away
	if m.AwayTeamID == teamID {
		goalsFor, goalsAgainst = goalsAgainst, goalsFor
	}
	switch {
	case goalsFor > goalsAgainst:
		return rating.ResultWin
	case goalsFor < goalsAgainst:
		return rating.ResultLoss
	default:
		return rating.ResultDraw
	}
}

func streakText(kind rating.Result, count int) string {
	if count == 0 {
		return "-"
	}
	return string(kind) + "x" + strconv.Itoa(count)
}
