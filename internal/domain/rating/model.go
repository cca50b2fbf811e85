package rating

// Result is a match outcome from one team's perspective.
type Result string

const (
	ResultWin  Result = "V"
	ResultDraw Result = "N"
	ResultLoss Result = "D"
)

// Event is one rating update, appended per team per processed match.
// Events are immutable once appended and ordered by processing order, which
// equals chronological match order.
type Event struct {
	MatchDay     int
	Rating       int
	Change       int
	Opponent     string
	Result       Result
	GoalsFor     int
	GoalsAgainst int
	Multiplier   float64
}

// TeamRating is the replay output for one team: its current rating plus the
// full append-only history that produced it.
type TeamRating struct {
	TeamID  int64
	Rating  int
	History []Event
}

// Prediction holds outcome probabilities as 0-100 integers. The three
// values sum to roughly 100; independent rounding may drift by one.
type Prediction struct {
	HomeWinPct int
	DrawPct    int
	AwayWinPct int
}
