package standings

import "github.com/petiteligue/ligue-api/internal/domain/rating"

// View selects which of a match's goals count toward the table.
type View string

const (
	ViewFull       View = "full"
	ViewFirstHalf  View = "first-half"
	ViewSecondHalf View = "second-half"
	ViewNoStoppage View = "no-stoppage"
)

// Location filters matches by where the team played.
type Location string

const (
	LocationAll  Location = "all"
	LocationHome Location = "home"
	LocationAway Location = "away"
)

// Options bundles the view mode and the optional matchday/location filters.
// The zero value means: full view, whole season, both venues.
type Options struct {
	View         View
	FromMatchDay int
	UpToMatchDay int
	Location     Location
}

// Row is one team's derived line in the table. Recomputed on demand, never
// persisted as ground truth.
type Row struct {
	TeamID         int64
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Streak is the unbroken run of identical results ending at the most recent
// qualifying match.
type Streak struct {
	Type  rating.Result
	Count int
	Text  string
}

func normalizeView(v View) View {
	switch v {
	case ViewFirstHalf, ViewSecondHalf, ViewNoStoppage:
		return v
	default:
		return ViewFull
	}
}

func normalizeLocation(l Location) Location {
	switch l {
	case LocationHome, LocationAway:
		return l
	default:
		return LocationAll
	}
}

// ParseView maps the wire value onto a view mode, defaulting to full.
func ParseView(raw string) View {
	return normalizeView(View(raw))
}

// ParseLocation maps the wire value onto a location filter, defaulting to all.
func ParseLocation(raw string) Location {
	return normalizeLocation(Location(raw))
}
