package rating

import "fmt"

// DefaultFormWindow is the number of trailing rating events the form
// modifier looks at when no explicit window is requested.
const DefaultFormWindow = 5

// Form status bands, from hottest to coldest.
const (
	StatusOnFire     = "on fire"
	StatusGoodForm   = "good form"
	StatusNeutral    = "neutral"
	StatusStruggling = "struggling"
	StatusCrisis     = "crisis"
	StatusUnknown    = "unknown"
)

const (
	formModifierFloor   = -200
	formModifierCeiling = 200
)

// FormReport summarizes a team's recent form as a bounded rating modifier
// plus one human-readable line per rule that fired.
type FormReport struct {
	Modifier      int
	Details       []string
	Status        string
	RecentResults []Result
}

// FormModifier analyzes the trailing window of a team's rating history and
// derives a modifier in [-200, 200]. Rules are evaluated in a fixed order;
// each appends its own detail line. An empty history yields a neutral
// report with status "unknown".
func FormModifier(history []Event, window int) FormReport {
	if window <= 0 {
		window = DefaultFormWindow
	}
	if len(history) == 0 {
		return FormReport{Status: StatusUnknown}
	}

	events := history
	if len(events) > window {
		events = events[len(events)-window:]
	}

	results := make([]Result, len(events))
	for i, e := range events {
		results[i] = e.Result
	}

	var modifier int
	var details []string
	add := func(points int, detail string) {
		modifier += points
		details = append(details, detail)
	}

	// Result streak: only the highest threshold met applies.
	streakLen, streakResult := trailingRun(results)
	switch {
	case streakResult == ResultWin && streakLen >= 5:
		add(80, fmt.Sprintf("%d-match winning streak (+80)", streakLen))
	case streakResult == ResultWin && streakLen == 4:
		add(55, "4-match winning streak (+55)")
	case streakResult == ResultWin && streakLen == 3:
		add(30, "3-match winning streak (+30)")
	case streakResult == ResultLoss && streakLen >= 5:
		add(-90, fmt.Sprintf("%d-match losing streak (-90)", streakLen))
	case streakResult == ResultLoss && streakLen == 4:
		add(-65, "4-match losing streak (-65)")
	case streakResult == ResultLoss && streakLen == 3:
		add(-40, "3-match losing streak (-40)")
	}

	unbeaten := trailingRunWhere(events, func(e Event) bool { return e.Result != ResultLoss })
	switch {
	case unbeaten >= 8:
		add(70, fmt.Sprintf("unbeaten in %d (+70)", unbeaten))
	case unbeaten >= 5:
		add(40, fmt.Sprintf("unbeaten in %d (+40)", unbeaten))
	}

	wins := 0
	for _, e := range events {
		if e.Result == ResultWin {
			wins++
		}
	}
	if wins == 0 {
		switch {
		case len(events) >= 7:
			add(-70, fmt.Sprintf("no win in %d matches (-70)", len(events)))
		case len(events) >= 5:
			add(-55, fmt.Sprintf("no win in %d matches (-55)", len(events)))
		}
	}

	cleanSheets := 0
	conceded := 0
	scored := 0
	for _, e := range events {
		conceded += e.GoalsAgainst
		scored += e.GoalsFor
		if e.GoalsAgainst == 0 {
			cleanSheets++
		}
	}
	switch {
	case cleanSheets >= 3:
		add(30, fmt.Sprintf("%d clean sheets in window (+30)", cleanSheets))
	case cleanSheets == 2:
		add(18, "2 clean sheets in window (+18)")
	case cleanSheets == 1:
		details = append(details, "1 clean sheet in window")
	case len(events) >= 5:
		add(-18, "no clean sheet in window (-18)")
	}

	if conceded <= 2 && len(events) >= 5 {
		add(12, fmt.Sprintf("only %d conceded in window (+12)", conceded))
	} else if conceded >= 10 {
		add(-35, fmt.Sprintf("%d conceded in window (-35)", conceded))
	}

	scoringRun := trailingRunWhere(events, func(e Event) bool { return e.GoalsFor >= 1 })
	switch {
	case scoringRun >= 5:
		add(25, fmt.Sprintf("scored in last %d matches (+25)", scoringRun))
	case scoringRun == 4:
		add(15, "scored in last 4 matches (+15)")
	}
	if scored >= 10 && len(events) >= 5 {
		add(18, fmt.Sprintf("%d goals scored in window (+18)", scored))
	}
	scorelessRun := trailingRunWhere(events, func(e Event) bool { return e.GoalsFor == 0 })
	if scorelessRun >= 2 {
		add(-20, fmt.Sprintf("scoreless in last %d matches (-20)", scorelessRun))
	}

	if modifier > formModifierCeiling {
		modifier = formModifierCeiling
	}
	if modifier < formModifierFloor {
		modifier = formModifierFloor
	}

	return FormReport{
		Modifier:      modifier,
		Details:       details,
		Status:        classifyForm(modifier),
		RecentResults: results,
	}
}

func classifyForm(modifier int) string {
	switch {
	case modifier >= 50:
		return StatusOnFire
	case modifier >= 20:
		return StatusGoodForm
	case modifier > -20:
		return StatusNeutral
	case modifier > -50:
		return StatusStruggling
	default:
		return StatusCrisis
	}
}

// trailingRun returns the length and value of the run of identical results
// at the end of the sequence.
func trailingRun(results []Result) (int, Result) {
	if len(results) == 0 {
		return 0, ""
	}
	last := results[len(results)-1]
	count := 0
	for i := len(results) - 1; i >= 0 && results[i] == last; i-- {
		count++
	}
	return count, last
}

func trailingRunWhere(events []Event, keep func(Event) bool) int {
	count := 0
	for i := len(events) - 1; i >= 0 && keep(events[i]); i-- {
		count++
	}
	return count
}
