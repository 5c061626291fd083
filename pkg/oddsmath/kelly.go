package oddsmath

// KellyFraction returns the full-Kelly fraction of bankroll for a bet at the
// given American price with an estimated true win probability.
//
//	f = (b*p - q) / b
//
// where b is net decimal odds, p the win probability, q = 1-p. Returns 0
// when the bet has no edge.
func KellyFraction(price, trueProb float64) float64 {
	if trueProb <= 0 || trueProb >= 1 {
		return 0
	}

	decimal, err := AmericanToDecimal(price)
	if err != nil {
		return 0
	}

	b := decimal - 1.0
	q := 1.0 - trueProb

	kelly := (b*trueProb - q) / b
	if kelly <= 0 {
		return 0
	}

	return kelly
}

// SuggestedStakePct returns a conservative stake suggestion as a percentage
// of bankroll: quarter Kelly, capped at 5%.
func SuggestedStakePct(price, trueProb float64) float64 {
	stake := KellyFraction(price, trueProb) * 0.25 * 100.0
	if stake > 5.0 {
		stake = 5.0
	}
	return stake
}
