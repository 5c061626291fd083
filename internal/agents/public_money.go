package agents

import (
	"fmt"
	"math"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

// PublicMoneyAgent infers which side the public is loading up on from the
// juice distribution at recreational books. Sharp books shade lines under a
// different book-management logic and would bias the inference, so only
// square lines are read.
type PublicMoneyAgent struct{}

// Name implements Agent.
func (a *PublicMoneyAgent) Name() string { return models.AgentPublicMoney }

// Analyze emits a public-lean signal naming the public side, an estimated
// public betting percentage, and the contrarian side.
func (a *PublicMoneyAgent) Analyze(game models.NormalizedGame) []models.Signal {
	var homeJuice, awayJuice []float64
	for _, line := range game.SpreadLines {
		if line.Sharp {
			continue
		}

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
		return nil
	}

	publicSide, contrarianSide := game.HomeTeam, game.AwayTeam
	maxJuice := homeMean
	if awayMean > homeMean {
		publicSide, contrarianSide = game.AwayTeam, game.HomeTeam
		maxJuice = awayMean
	}

	// Calibration constant mapping raw juice imbalance into a plausible
	// public-betting percentage. A design choice, not a measured quantity.
	publicPct := int(math.Round(maxJuice*100)) + 8
	if publicPct < 55 {
		publicPct = 55
	}
	if publicPct > 80 {
		publicPct = 80
	}

	return []models.Signal{{
		Agent:          models.AgentPublicMoney,
		Type:           models.SignalPublicLean,
		Market:         "spreads",
		PublicSide:     publicSide,
		ContrarianSide: contrarianSide,
		PublicPct:      publicPct,
		Description:    fmt.Sprintf("~%d%% of public money on %s", publicPct, publicSide),
	}}
}
