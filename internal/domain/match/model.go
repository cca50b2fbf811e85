package match

import (
	"fmt"
	"sort"
	"time"
)

// Score is a final result from the home team's perspective.
type Score struct {
	Home int
	Away int
}

// Goal is a single scoring event. Minute 1..45 belongs to the first half
// (45 plus stoppage included), anything above to the second half. A goal is
// end-of-match stoppage time when Minute >= 90 and ExtraTime > 0.
type Goal struct {
	TeamID    int64
	Scorer    string
	Minute    int
	ExtraTime int
}

// FirstHalf reports whether the goal fell in the first half window.
// Goals with a minute outside 1..90 match neither half.
func (g Goal) FirstHalf() bool {
	return g.Minute >= 1 && g.Minute <= 45
}

// SecondHalf reports whether the goal fell in the second half window.
func (g Goal) SecondHalf() bool {
	return g.Minute > 45 && g.Minute <= 90
}

// EndOfMatchStoppage reports whether the goal was scored in added time at
// the end of the match.
func (g Goal) EndOfMatchStoppage() bool {
	return g.Minute >= 90 && g.ExtraTime > 0
}

// Match is one played or scheduled fixture inside a season. FinalScore is
// authoritative when goal detail is absent; when goals are recorded their
// per-team counts must agree with FinalScore.
type Match struct {
	ID            int64
	Season        string
	MatchDay      int
	Date          time.Time
	HomeTeamID    int64
	AwayTeamID    int64
	FinalScore    *Score
	HalftimeScore string
	Goals         []Goal
}

// Played reports whether a final score has been recorded.
func (m Match) Played() bool {
	return m.FinalScore != nil
}

// Involves reports whether the given team took part in the match.
func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

func (m Match) Validate() error {
	if m.Season == "" {
		return fmt.Errorf("match season is required")
	}
	if m.MatchDay <= 0 {
		return fmt.Errorf("match day must be positive")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team ids must be positive")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("a team cannot play itself")
	}
	if m.FinalScore != nil && (m.FinalScore.Home < 0 || m.FinalScore.Away < 0) {
		return fmt.Errorf("final score cannot be negative")
	}
	for _, goal := range m.Goals {
		if goal.TeamID != m.HomeTeamID && goal.TeamID != m.AwayTeamID {
			return fmt.Errorf("goal team id %d does not belong to the match", goal.TeamID)
		}
		if goal.Minute < 1 || goal.Minute > 90 {
			return fmt.Errorf("goal minute %d out of range 1..90", goal.Minute)
		}
		if goal.ExtraTime < 0 || goal.ExtraTime > 15 {
			return fmt.Errorf("goal extra time %d out of range 0..15", goal.ExtraTime)
		}
	}
	if m.FinalScore != nil && len(m.Goals) > 0 {
		home, away := 0, 0
		for _, goal := range m.Goals {
			if goal.TeamID == m.HomeTeamID {
				home++
			} else {
				away++
			}
		}
		if home != m.FinalScore.Home || away != m.FinalScore.Away {
			return fmt.Errorf("goal detail %d-%d disagrees with final score %d-%d",
				home, away, m.FinalScore.Home, m.FinalScore.Away)
		}
	}

	return nil
}

// SortChronological orders matches by (matchDay, date) ascending, the replay
// order the rating engine depends on.
func SortChronological(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchDay != matches[j].MatchDay {
			return matches[i].MatchDay < matches[j].MatchDay
		}
		return matches[i].Date.Before(matches[j].Date)
	})
}

// SortGoals orders goals by (minute, extraTime) ascending.
func SortGoals(goals []Goal) {
	sort.SliceStable(goals, func(i, j int) bool {
		if goals[i].Minute != goals[j].Minute {
			return goals[i].Minute < goals[j].Minute
		}
		return goals[i].ExtraTime < goals[j].ExtraTime
	})
}
