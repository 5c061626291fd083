// Package arbitrage scans normalized games for two-leg guaranteed-profit
// combinations across books. It runs off the same normalized games as the
// agent pipeline but is fully independent of it.
package arbitrage

import (
	"sort"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

// MaxTotalImplied qualifies a pair: combined implied probability must sit
// below 0.98, leaving at least a ~2% theoretical margin.
const MaxTotalImplied = 0.98

// Detector finds cross-book arbitrage on spreads and moneylines.
type Detector struct{}

// New builds a detector.
func New() *Detector {
	return &Detector{}
}

// Detect pools opportunities across all games, sorted descending by profit
// percentage.
func (d *Detector) Detect(games []models.NormalizedGame) []models.ArbitrageOpportunity {
	var opportunities []models.ArbitrageOpportunity

	for _, game := range games {
		opportunities = append(opportunities, d.scanSpreads(game)...)
		opportunities = append(opportunities, d.scanMoneylines(game)...)
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		if opportunities[i].ProfitPct != opportunities[j].ProfitPct {
			return opportunities[i].ProfitPct > opportunities[j].ProfitPct
		}
		return opportunities[i].GameID < opportunities[j].GameID
	})

	return opportunities
}

func (d *Detector) scanSpreads(game models.NormalizedGame) []models.ArbitrageOpportunity {
	var opportunities []models.ArbitrageOpportunity

	lines := game.SpreadLines
	for i := range lines {
		for j := range lines {
			if i == j || lines[i].Book == lines[j].Book {
				continue
			}

			// Away side at book i, home side at book j.
			awayPoint, homePoint := lines[i].AwayPoint, lines[j].HomePoint
			opp, ok := d.pair(game, "spreads",
				leg(lines[i].Book, game.AwayTeam, lines[i].AwayPrice, &awayPoint),
				leg(lines[j].Book, game.HomeTeam, lines[j].HomePrice, &homePoint))
			if ok {
				opportunities = append(opportunities, opp)
			}
		}
	}

	return opportunities
}

func (d *Detector) scanMoneylines(game models.NormalizedGame) []models.ArbitrageOpportunity {
	var opportunities []models.ArbitrageOpportunity

	lines := game.MoneylineLines
	for i := range lines {
		for j := range lines {
			if i == j || lines[i].Book == lines[j].Book {
				continue
			}

			opp, ok := d.pair(game, "h2h",
				leg(lines[i].Book, game.AwayTeam, lines[i].AwayPrice, nil),
				leg(lines[j].Book, game.HomeTeam, lines[j].HomePrice, nil))
			if ok {
				opportunities = append(opportunities, opp)
			}
		}
	}

	return opportunities
}

// pair qualifies one away/home leg combination and computes the profit and
// the proportional stake split. Stakes sum to 100, guaranteeing an equal
// payout regardless of outcome.
func (d *Detector) pair(game models.NormalizedGame, market string, away, home models.ArbitrageLeg) (models.ArbitrageOpportunity, bool) {
	awayProb, err := oddsmath.ImpliedProbability(away.Price)
	if err != nil {
		return models.ArbitrageOpportunity{}, false
	}

	homeProb, err := oddsmath.ImpliedProbability(home.Price)
	if err != nil {
		return models.ArbitrageOpportunity{}, false
	}

	total := awayProb + homeProb
	if total >= MaxTotalImplied {
		return models.ArbitrageOpportunity{}, false
	}

	away.ImpliedProb = awayProb
	away.StakePct = 100.0 * awayProb / total
	home.ImpliedProb = homeProb
	home.StakePct = 100.0 * homeProb / total

	return models.ArbitrageOpportunity{
		GameID:       game.GameID,
		SportKey:     game.SportKey,
		Sport:        game.Sport,
		Matchup:      game.Matchup(),
		CommenceTime: game.CommenceTime,
		Market:       market,
		TotalImplied: total,
		ProfitPct:    (1.0/total - 1.0) * 100.0,
		Legs:         [2]models.ArbitrageLeg{away, home},
	}, true
}

func leg(book, outcome string, price float64, point *float64) models.ArbitrageLeg {
	return models.ArbitrageLeg{Book: book, Outcome: outcome, Price: price, Point: point}
}
