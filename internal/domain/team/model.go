package team

import "fmt"

// Team is a club registered with the league. Ratings are derived data and
// live in the rating package, never on the roster record.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	City      string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be positive")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
