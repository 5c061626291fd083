package oddsmath

import "fmt"

// Devig removes the bookmaker margin from a two-way market quoted in
// American odds using the multiplicative method:
//
//  1. Convert both prices to implied probabilities
//  2. Normalize each by their sum
//
// The returned pair sums to exactly 1.0 and approximates the market's true
// consensus probability. Only call this on averaged (consensus) prices
// across books: devigging a single book's two-sided price merely removes
// that book's own margin.
//
// Example:
// -110 / -110 → 52.38% / 52.38% implied → 50% / 50% fair
func Devig(price1, price2 float64) (fair1, fair2 float64, err error) {
	prob1, err := ImpliedProbability(price1)
	if err != nil {
		return 0, 0, err
	}

	prob2, err := ImpliedProbability(price2)
	if err != nil {
		return 0, 0, err
	}

	total := prob1 + prob2
	if total <= 0 {
		return 0, 0, fmt.Errorf("degenerate market: implied probabilities sum to %.4f", total)
	}

	return prob1 / total, prob2 / total, nil
}

// VigPercentage returns the overround baked into a two-way market.
// -110 / -110 → 4.76
func VigPercentage(price1, price2 float64) (float64, error) {
	prob1, err := ImpliedProbability(price1)
	if err != nil {
		return 0, err
	}

	prob2, err := ImpliedProbability(price2)
	if err != nil {
		return 0, err
	}

	total := prob1 + prob2
	if total <= 1.0 {
		return 0, nil
	}

	return (total - 1.0) * 100.0, nil
}
