package oddsmath

import (
	"fmt"
	"math"
)

// ImpliedProbability converts American odds to an implied probability.
// The result includes the book's vig: the two sides of a fair two-way
// market sum to more than 1.
//
// Positive odds: 100 / (odds + 100)
// Negative odds: |odds| / (|odds| + 100)
//
// American odds are undefined inside (-100, +100); averaged consensus
// prices can land there, in which case an error is returned and the caller
// skips the market.
func ImpliedProbability(american float64) (float64, error) {
	if math.Abs(american) < 100 {
		return 0, fmt.Errorf("invalid American odds %.2f: magnitude below 100", american)
	}

	if american > 0 {
		return 100.0 / (american + 100.0), nil
	}

	return -american / (-american + 100.0), nil
}

// AmericanToDecimal converts American odds to decimal odds.
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american float64) (float64, error) {
	if math.Abs(american) < 100 {
		return 0, fmt.Errorf("invalid American odds %.2f: magnitude below 100", american)
	}

	if american > 0 {
		return (american / 100.0) + 1.0, nil
	}

	return (100.0 / -american) + 1.0, nil
}

// DecimalToAmerican converts decimal odds to American odds.
// Decimal 2.50 → +150
// Decimal 1.67 → -150
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal <= 1.0 {
		return 0, fmt.Errorf("invalid decimal odds %.4f: must be > 1.0", decimal)
	}

	if decimal >= 2.0 {
		return int(math.Round((decimal - 1.0) * 100.0)), nil
	}

	return int(math.Round(-100.0 / (decimal - 1.0))), nil
}

// ProbabilityToAmerican converts a probability to the equivalent fair
// American price.
func ProbabilityToAmerican(probability float64) (int, error) {
	if probability <= 0 || probability >= 1 {
		return 0, fmt.Errorf("invalid probability %.4f: must be between 0 and 1", probability)
	}

	return DecimalToAmerican(1.0 / probability)
}

// FormatAmerican renders an American price with its conventional sign,
// e.g. +120 or -110.
func FormatAmerican(american float64) string {
	return fmt.Sprintf("%+d", int(math.Round(american)))
}
