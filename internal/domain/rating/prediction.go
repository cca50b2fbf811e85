package rating

import "math"

// Predict estimates outcome probabilities for a single fixture from the two
// current ratings. Home advantage is applied to the expectation input. The
// draw probability shrinks as the rating gap widens but never falls below
// 15%; the win probabilities share the remainder.
func Predict(homeRating, awayRating int) Prediction {
	adjustedHome := homeRating + HomeAdvantage
	expectedHome := ExpectedScore(adjustedHome, awayRating)

	gap := adjustedHome - awayRating
	if gap < 0 {
		gap = -gap
	}
	drawProb := math.Max(0.15, 0.35-float64(gap)/1000)

	homeProb := expectedHome * (1 - drawProb)
	awayProb := (1 - expectedHome) * (1 - drawProb)

	return Prediction{
		HomeWinPct: int(math.Round(homeProb * 100)),
		DrawPct:    int(math.Round(drawProb * 100)),
		AwayWinPct: int(math.Round(awayProb * 100)),
	}
}
