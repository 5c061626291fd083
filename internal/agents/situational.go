package agents

import (
	"fmt"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

const (
	roadDogStrongPts    = 7.0
	roadDogModeratePts  = 3.5
	homeChalkPts        = 9.0
	bigDogMinPrice      = 160.0
	bigDogModeratePrice = 250.0
)

// SituationalAgent applies static betting angles that need no cross-book
// comparison: road underdogs, fading heavy home chalk, and big-dog
// moneyline value. It reads the first spread and moneyline on the board.
type SituationalAgent struct{}

// Name implements Agent.
func (a *SituationalAgent) Name() string { return models.AgentSituational }

// Analyze is independent of book count.
func (a *SituationalAgent) Analyze(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal

	if len(game.SpreadLines) > 0 {
		line := game.SpreadLines[0]

		if line.AwayPoint > 0 {
			strength := models.StrengthWeak
			switch {
			case line.AwayPoint >= roadDogStrongPts:
				strength = models.StrengthStrong
			case line.AwayPoint >= roadDogModeratePts:
				strength = models.StrengthModerate
			}

			signals = append(signals, models.Signal{
				Agent:       models.AgentSituational,
				Type:        models.SignalRoadDog,
				Team:        game.AwayTeam,
				Market:      "spreads",
				Point:       line.AwayPoint,
				Strength:    strength,
				Description: fmt.Sprintf("road underdog getting %+.1f points", line.AwayPoint),
			})
		}

		if line.AwayPoint > homeChalkPts {
			signals = append(signals, models.Signal{
				Agent:       models.AgentSituational,
				Type:        models.SignalHomeChalkFade,
				Team:        game.AwayTeam,
				Market:      "spreads",
				Strength:    models.StrengthModerate,
				Description: fmt.Sprintf("%s favored by %.1f at home, chalk fade angle", game.HomeTeam, line.AwayPoint),
			})
		}
	}

	if len(game.MoneylineLines) > 0 {
		line := game.MoneylineLines[0]
		if line.AwayPrice > bigDogMinPrice {
			strength := models.StrengthWeak
			if line.AwayPrice >= bigDogModeratePrice {
				strength = models.StrengthModerate
			}

			signals = append(signals, models.Signal{
				Agent:       models.AgentSituational,
				Type:        models.SignalBigDogML,
				Team:        game.AwayTeam,
				Market:      "h2h",
				Price:       line.AwayPrice,
				Strength:    strength,
				Description: fmt.Sprintf("big dog moneyline at %s", oddsmath.FormatAmerican(line.AwayPrice)),
			})
		}
	}

	return signals
}
