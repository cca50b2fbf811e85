package rating

import "testing"

func TestPredict_EqualRatings(t *testing.T) {
	t.Parallel()

	p := Predict(1500, 1500)

	// +100 home advantage leaves a 100-point effective gap, so the draw
	// probability is 0.35 - 0.1 = 0.25 and the home side is favourite.
	if p.DrawPct != 25 {
		t.Fatalf("draw pct = %d, want 25", p.DrawPct)
	}
	if p.HomeWinPct <= p.AwayWinPct {
		t.Fatalf("home advantage missing: home %d vs away %d", p.HomeWinPct, p.AwayWinPct)
	}

	sum := p.HomeWinPct + p.DrawPct + p.AwayWinPct
	if sum < 99 || sum > 101 {
		t.Fatalf("probabilities sum to %d, want ~100", sum)
	}
}

func TestPredict_DrawFloor(t *testing.T) {
	t.Parallel()

	p := Predict(2000, 1200)
	if p.DrawPct != 15 {
		t.Fatalf("draw pct = %d, want floor 15", p.DrawPct)
	}
	if p.HomeWinPct < 80 {
		t.Fatalf("huge favourite should dominate, got home %d", p.HomeWinPct)
	}
}

func TestPredict_SumNearHundred(t *testing.T) {
	t.Parallel()

	pairs := [][2]int{{1500, 1500}, {1450, 1700}, {1800, 1300}, {1520, 1480}}
	for _, pair := range pairs {
		p := Predict(pair[0], pair[1])
		sum := p.HomeWinPct + p.DrawPct + p.AwayWinPct
		if sum < 99 || sum > 101 {
			t.Fatalf("Predict(%d, %d) sums to %d", pair[0], pair[1], sum)
		}
	}
}
