package agents

import (
	"fmt"
	"math"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// LineMovementAgent reads cross-book divergence in spread points: a wide
// range of away-side points means the market has moved and at least one book
// is stale, and a sharp/square split shows where informed books stand.
type LineMovementAgent struct{}

// Name implements Agent.
func (a *LineMovementAgent) Name() string { return models.AgentLineMovement }

// Analyze requires at least two spread lines; one book shows no movement.
func (a *LineMovementAgent) Analyze(game models.NormalizedGame) []models.Signal {
	lines := game.SpreadLines
	if len(lines) < 2 {
		return nil
	}

	var signals []models.Signal

	minPoint, maxPoint := lines[0].AwayPoint, lines[0].AwayPoint
	var sharpPoints, squarePoints []float64
	for _, line := range lines {
		if line.AwayPoint < minPoint {
			minPoint = line.AwayPoint
		}
		if line.AwayPoint > maxPoint {
			maxPoint = line.AwayPoint
		}
		if line.Sharp {
			sharpPoints = append(sharpPoints, line.AwayPoint)
		} else {
			squarePoints = append(squarePoints, line.AwayPoint)
		}
	}

	if spread := maxPoint - minPoint; spread >= 0.5 {
		strength := models.StrengthWeak
		switch {
		case spread >= 1.5:
			strength = models.StrengthStrong
		case spread >= 1.0:
			strength = models.StrengthModerate
		}

		signals = append(signals, models.Signal{
			Agent:       models.AgentLineMovement,
			Type:        models.SignalLineRange,
			Team:        game.AwayTeam,
			Market:      "spreads",
			Point:       maxPoint, // most favorable away line on the board
			Strength:    strength,
			Description: fmt.Sprintf("%.1f-point spread range across books, best away line %+.1f", spread, maxPoint),
		})
	}

	sharpMean, okSharp := mean(sharpPoints)
	squareMean, okSquare := mean(squarePoints)
	if okSharp && okSquare {
		divergence := sharpMean - squareMean
		if math.Abs(divergence) >= 0.5 {
			// Sharp books handing the away team extra points means the
			// away number is the one worth taking there: sharps lean away.
			sharpSide := game.HomeTeam
			if divergence > 0 {
				sharpSide = game.AwayTeam
			}

			strength := models.StrengthModerate
			if math.Abs(divergence) >= 1.0 {
				strength = models.StrengthStrong
			}

			signals = append(signals, models.Signal{
				Agent:       models.AgentLineMovement,
				Type:        models.SignalSharpVsSquare,
				Team:        sharpSide,
				Market:      "spreads",
				SharpSide:   sharpSide,
				Strength:    strength,
				Description: fmt.Sprintf("sharp books %.1f points off square books, favoring %s", math.Abs(divergence), sharpSide),
			})
		}
	}

	return signals
}
