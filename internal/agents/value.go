package agents

import (
	"fmt"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

// Edge thresholds in percentage points. Moneyline value is held to a higher
// bar and restricted to away longshots, where soft books misprice most.
const (
	minSpreadEdge    = 2.5
	minMoneylineEdge = 3.5
	minDogPrice      = 110
)

// ValueAgent finds prices beating the devigged cross-book consensus. It is
// the only agent that produces candidate bets; everything else corroborates.
type ValueAgent struct{}

// Name implements Agent.
func (a *ValueAgent) Name() string { return models.AgentValue }

// Analyze compares each side's best available price against the true
// probability implied by the devigged consensus (mean) price. A single
// book's quote cannot be cross-checked, so at least two lines are required.
func (a *ValueAgent) Analyze(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal
	signals = append(signals, a.spreadValue(game)...)
	signals = append(signals, a.moneylineValue(game)...)
	return signals
}

func (a *ValueAgent) spreadValue(game models.NormalizedGame) []models.Signal {
	lines := game.SpreadLines
	if len(lines) < 2 {
		return nil
	}

	var awayPrices, homePrices []float64
	bestAway, bestHome := lines[0], lines[0]
	for _, line := range lines {
		awayPrices = append(awayPrices, line.AwayPrice)
		homePrices = append(homePrices, line.HomePrice)
		if line.AwayPrice > bestAway.AwayPrice {
			bestAway = line
		}
		if line.HomePrice > bestHome.HomePrice {
			bestHome = line
		}
	}

	avgAway, _ := mean(awayPrices)
	avgHome, _ := mean(homePrices)

	trueAway, trueHome, err := oddsmath.Devig(avgAway, avgHome)
	if err != nil {
		return nil
	}

	var signals []models.Signal

	if sig, ok := a.sideValue(game, trueAway, game.AwayTeam, bestAway.AwayPrice, bestAway.AwayPoint); ok {
		signals = append(signals, sig)
	}
	if sig, ok := a.sideValue(game, trueHome, game.HomeTeam, bestHome.HomePrice, bestHome.HomePoint); ok {
		signals = append(signals, sig)
	}

	return signals
}

// sideValue evaluates one side of the spread market at its best price.
func (a *ValueAgent) sideValue(game models.NormalizedGame, trueProb float64, team string, bestPrice, point float64) (models.Signal, bool) {
	implied, err := oddsmath.ImpliedProbability(bestPrice)
	if err != nil {
		return models.Signal{}, false
	}

	edge := (trueProb - implied) * 100.0
	if edge <= minSpreadEdge {
		return models.Signal{}, false
	}

	bet := fmt.Sprintf("%s %+.1f", team, point)
	return models.Signal{
		Agent:       models.AgentValue,
		Type:        models.SignalSpreadValue,
		Team:        team,
		Market:      "spreads",
		Price:       bestPrice,
		Point:       point,
		Edge:        edge,
		Description: fmt.Sprintf("%s at %s beats consensus by %.1f%%", bet, oddsmath.FormatAmerican(bestPrice), edge),
	}, true
}

func (a *ValueAgent) moneylineValue(game models.NormalizedGame) []models.Signal {
	lines := game.MoneylineLines
	if len(lines) < 2 {
		return nil
	}

	var awayPrices, homePrices []float64
	bestAway := lines[0].AwayPrice
	for _, line := range lines {
		awayPrices = append(awayPrices, line.AwayPrice)
		homePrices = append(homePrices, line.HomePrice)
		if line.AwayPrice > bestAway {
			bestAway = line.AwayPrice
		}
	}

	avgAway, _ := mean(awayPrices)
	avgHome, _ := mean(homePrices)

	trueAway, _, err := oddsmath.Devig(avgAway, avgHome)
	if err != nil {
		return nil
	}

	implied, err := oddsmath.ImpliedProbability(bestAway)
	if err != nil {
		return nil
	}

	edge := (trueAway - implied) * 100.0

	// Longshot-style plays only: the away side must pay better than +110.
	// Home-side moneyline value is not modeled.
	if edge <= minMoneylineEdge || bestAway <= minDogPrice {
		return nil
	}

	return []models.Signal{{
		Agent:       models.AgentValue,
		Type:        models.SignalMoneylineValue,
		Team:        game.AwayTeam,
		Market:      "h2h",
		Price:       bestAway,
		Edge:        edge,
		Description: fmt.Sprintf("%s ML at %s beats consensus by %.1f%%", game.AwayTeam, oddsmath.FormatAmerican(bestAway), edge),
	}}
}
