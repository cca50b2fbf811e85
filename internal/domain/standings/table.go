package standings

import (
	"sort"

	"github.com/petiteligue/ligue-api/internal/domain/match"
	"github.com/petiteligue/ligue-api/internal/domain/team"
)

// Build aggregates the season's matches into one row per roster team and
// returns them ranked by points, then goal difference, then goals for, all
// descending. The sort is stable, so exact ties keep roster order; no
// further tie-break is defined.
func Build(roster []team.Team, matches []match.Match, opts Options) []Row {
	opts.View = normalizeView(opts.View)
	opts.Location = normalizeLocation(opts.Location)
	if opts.FromMatchDay <= 0 {
		opts.FromMatchDay = 1
	}

	rows := make([]Row, len(roster))
	index := make(map[int64]*Row, len(roster))
	for i, t := range roster {
		rows[i] = Row{TeamID: t.ID}
		index[t.ID] = &rows[i]
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		if m.MatchDay < opts.FromMatchDay {
			continue
		}
		if opts.UpToMatchDay > 0 && m.MatchDay > opts.UpToMatchDay {
			continue
		}

		home, okHome := index[m.HomeTeamID]
		away, okAway := index[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}

		homeGoals, awayGoals := viewScore(m, opts.View)
		if opts.Location != LocationAway {
			accumulate(home, homeGoals, awayGoals)
		}
		if opts.Location != LocationHome {
			accumulate(away, awayGoals, homeGoals)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})

	return rows
}

// viewScore returns the per-side goal counts that count under the view.
// Half-based views rely on goal detail; a match without any recorded goals
// contributes a 0-0 there. The no-stoppage view falls back to the final
// score when goal detail is absent.
func viewScore(m match.Match, view View) (int, int) {
	if view == ViewFull {
		return m.FinalScore.Home, m.FinalScore.Away
	}
	if view == ViewNoStoppage && len(m.Goals) == 0 {
		return m.FinalScore.Home, m.FinalScore.Away
	}

	home, away := 0, 0
	for _, g := range m.Goals {
		if !goalCounts(g, view) {
			continue
		}
		if g.TeamID == m.HomeTeamID {
			home++
		} else if g.TeamID == m.AwayTeamID {
			away++
		}
	}
	return home, away
}

func goalCounts(g match.Goal, view View) bool {
	switch view {
	case ViewFirstHalf:
		return g.FirstHalf()
	case ViewSecondHalf:
		return g.SecondHalf()
	case ViewNoStoppage:
		// Goals with an out-of-range minute match no half predicate and are
		// excluded from every goal-based view.
		return (g.FirstHalf() || g.SecondHalf()) && !g.EndOfMatchStoppage()
	default:
		return true
	}
}

func accumulate(row *Row, goalsFor, goalsAgainst int) {
	row.Played++
	row.GoalsFor += goalsFor
	row.GoalsAgainst += goalsAgainst
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		row.Won++
		row.Points += 3
	case goalsFor < goalsAgainst:
		row.Lost++
	default:
		row.Drawn++
		row.Points++
	}
}
