package agents

import (
	"fmt"
	"math"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

// Juice gaps in probability points. 0.04 is roughly the difference between
// -110 and -130 on one side of a spread.
const (
	rlmPointGap        = 0.5
	juiceImbalanceMin  = 0.04
	juiceImbalanceHigh = 0.07
)

// SharpMoneyAgent runs two independent checks for professional money:
// reverse line movement between sharp and square books, and a juice
// imbalance across the whole market.
type SharpMoneyAgent struct{}

// Name implements Agent.
func (a *SharpMoneyAgent) Name() string { return models.AgentSharpMoney }

// Analyze reads spread lines only.
func (a *SharpMoneyAgent) Analyze(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal

	if sig, ok := a.reverseLineMovement(game); ok {
		signals = append(signals, sig)
	}
	if sig, ok := a.juiceImbalance(game); ok {
		signals = append(signals, sig)
	}

	return signals
}

// reverseLineMovement fires when sharp books give the away team materially
// more points than square books while also charging more home juice: the
// line moved toward the away side against the public's home money.
func (a *SharpMoneyAgent) reverseLineMovement(game models.NormalizedGame) (models.Signal, bool) {
	var sharpPoints, squarePoints, sharpHomeJuice, squareHomeJuice []float64

	for _, line := range game.SpreadLines {
		juice, err := oddsmath.ImpliedProbability(line.HomePrice)
		if err != nil {
			continue
		}

		if line.Sharp {
			sharpPoints = append(sharpPoints, line.AwayPoint)
			sharpHomeJuice = append(sharpHomeJuice, juice)
		} else {
			squarePoints = append(squarePoints, line.AwayPoint)
			squareHomeJuice = append(squareHomeJuice, juice)
		}
	}

	sharpMean, okSP := mean(sharpPoints)
	squareMean, okSQ := mean(squarePoints)
	sharpJuice, okSJ := mean(sharpHomeJuice)
	squareJuice, okQJ := mean(squareHomeJuice)
	if !okSP || !okSQ || !okSJ || !okQJ {
		return models.Signal{}, false
	}

	if sharpMean-squareMean <= rlmPointGap || sharpJuice <= squareJuice {
		return models.Signal{}, false
	}

	return models.Signal{
		Agent:       models.AgentSharpMoney,
		Type:        models.SignalRLM,
		Team:        game.AwayTeam,
		Market:      "spreads",
		SharpSide:   game.AwayTeam,
		RLMDetected: true,
		Strength:    models.StrengthStrong,
		Description: fmt.Sprintf("reverse line movement: sharp books %.1f points toward %s with heavier home juice", sharpMean-squareMean, game.AwayTeam),
	}, true
}

// juiceImbalance looks at every book: when one side carries materially more
// juice than the other, the book is discouraging public action on it and the
// lighter side is where sharp money sits.
func (a *SharpMoneyAgent) juiceImbalance(game models.NormalizedGame) (models.Signal, bool) {
	var homeJuice, awayJuice []float64
	for _, line := range game.SpreadLines {
		if p, err := oddsmath.ImpliedProbability(line.HomePrice); err == nil {
			homeJuice = append(homeJuice, p)
		}
		if p, err := oddsmath.ImpliedProbability(line.AwayPrice); err == nil {
			awayJuice = append(awayJuice, p)
		}
	}

	homeMean, okHome := mean(homeJuice)
	awayMean, okAway := mean(awayJuice)
	if !okHome || !okAway {
		return models.Signal{}, false
	}

	gap := math.Abs(homeMean - awayMean)
	if gap <= juiceImbalanceMin {
		return models.Signal{}, false
	}

	sharpSide, publicSide := game.HomeTeam, game.AwayTeam
	if homeMean > awayMean {
		sharpSide, publicSide = game.AwayTeam, game.HomeTeam
	}

	strength := models.StrengthModerate
	if gap > juiceImbalanceHigh {
		strength = models.StrengthStrong
	}

	return models.Signal{
		Agent:       models.AgentSharpMoney,
		Type:        models.SignalJuiceImbalance,
		Team:        sharpSide,
		Market:      "spreads",
		SharpSide:   sharpSide,
		PublicSide:  publicSide,
		Strength:    strength,
		Description: fmt.Sprintf("juice imbalance of %.1f points, lighter side %s", gap*100, sharpSide),
	}, true
}
