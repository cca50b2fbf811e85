package season

import (
	"fmt"
	"time"
)

// Season is one round-robin campaign. Exactly one season is active at a
// time; starting a new one archives the current active season.
type Season struct {
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	TeamIDs   []int64
}

func (s Season) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("season start date is required")
	}

	return nil
}

// HasTeam reports whether the team is registered for the season.
func (s Season) HasTeam(teamID int64) bool {
	for _, id := range s.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
