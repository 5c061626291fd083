package agents

import (
	"fmt"
	"math"

	"github.com/grandrichlife727-design/edgebet-backend/internal/injuries"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

const (
	blowoutSpread     = 14.0
	injuryJuicePrice  = -135.0
	newsVariancePts   = 2.0
	newsVarianceBooks = 3
)

// InjuryAgent flags line shapes consistent with injury or roster news. The
// core checks are heuristics over the lines themselves; when an injury feed
// is configured, confirmed out/doubtful reports escalate the read.
type InjuryAgent struct {
	// Reports is the per-scan injury snapshot; nil when no feed is wired.
	Reports *injuries.Index
}

// Name implements Agent.
func (a *InjuryAgent) Name() string { return models.AgentInjury }

// Analyze emits one signal per anomaly, each carrying a line-impact
// classification. The scorer penalizes by the worst impact seen.
func (a *InjuryAgent) Analyze(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal

	if len(game.SpreadLines) > 0 {
		line := game.SpreadLines[0]
		if math.Abs(line.AwayPoint) > blowoutSpread {
			signals = append(signals, models.Signal{
				Agent:       models.AgentInjury,
				Type:        models.SignalLineAnomaly,
				LineImpact:  models.ImpactCheckReports,
				Description: fmt.Sprintf("spread of %.1f points, verify roster before betting", line.AwayPoint),
			})
		}
	}

	if len(game.MoneylineLines) > 0 {
		line := game.MoneylineLines[0]
		if line.HomePrice < injuryJuicePrice || line.AwayPrice < injuryJuicePrice {
			signals = append(signals, models.Signal{
				Agent:       models.AgentInjury,
				Type:        models.SignalLineAnomaly,
				LineImpact:  models.ImpactCheckReports,
				Description: "heavy moneyline juice, possibly injury-driven",
			})
		}
	}

	if len(game.SpreadLines) >= newsVarianceBooks {
		minPoint, maxPoint := game.SpreadLines[0].AwayPoint, game.SpreadLines[0].AwayPoint
		for _, line := range game.SpreadLines {
			if line.AwayPoint < minPoint {
				minPoint = line.AwayPoint
			}
			if line.AwayPoint > maxPoint {
				maxPoint = line.AwayPoint
			}
		}
		if maxPoint-minPoint >= newsVariancePts {
			signals = append(signals, models.Signal{
				Agent:       models.AgentInjury,
				Type:        models.SignalLineAnomaly,
				LineImpact:  models.ImpactHighImpact,
				Description: fmt.Sprintf("%.1f-point spread variance across %d books, market reacting to news", maxPoint-minPoint, len(game.SpreadLines)),
			})
		}
	}

	signals = append(signals, a.reportSignals(game)...)

	return signals
}

// reportSignals checks the feed snapshot for confirmed absences on either
// roster.
func (a *InjuryAgent) reportSignals(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal

	for _, team := range []string{game.AwayTeam, game.HomeTeam} {
		for _, report := range a.Reports.ReportsFor(team) {
			severity := injuries.Classify(report.Status)
			if severity == injuries.SeverityMinor {
				continue
			}

			impact := models.ImpactCheckReports
			if severity == injuries.SeverityOut {
				impact = models.ImpactHighImpact
			}

			signals = append(signals, models.Signal{
				Agent:       models.AgentInjury,
				Type:        models.SignalInjuryReport,
				Team:        team,
				Player:      report.Player,
				Status:      report.Status,
				LineImpact:  impact,
				Description: fmt.Sprintf("%s: %s listed %s", team, report.Player, report.Status),
			})
		}
	}

	return signals
}
