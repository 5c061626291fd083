// Package testutil provides fixture builders shared across package tests.
package testutil

import (
	"time"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// Kickoff is the fixed commence time used by fixtures; tests depend on
// deterministic input.
var Kickoff = time.Date(2026, time.January, 15, 0, 30, 0, 0, time.UTC)

// GameFixture creates a NormalizedGame with sensible defaults.
func GameFixture(overrides ...func(*models.NormalizedGame)) models.NormalizedGame {
	game := models.NormalizedGame{
		GameID:       "test-game-1",
		SportKey:     "basketball_nba",
		Sport:        "NBA",
		Emoji:        "🏀",
		HomeTeam:     "Boston Celtics",
		AwayTeam:     "Los Angeles Lakers",
		CommenceTime: Kickoff,
	}

	for _, override := range overrides {
		override(&game)
	}

	return game
}

// Spread appends a spread line.
func Spread(book string, sharp bool, awayPoint, awayPrice, homePrice float64) func(*models.NormalizedGame) {
	return func(g *models.NormalizedGame) {
		g.SpreadLines = append(g.SpreadLines, models.SpreadLine{
			Book:      book,
			Sharp:     sharp,
			AwayPoint: awayPoint,
			HomePoint: -awayPoint,
			AwayPrice: awayPrice,
			HomePrice: homePrice,
		})
	}
}

// Moneyline appends a moneyline line.
func Moneyline(book string, sharp bool, awayPrice, homePrice float64) func(*models.NormalizedGame) {
	return func(g *models.NormalizedGame) {
		g.MoneylineLines = append(g.MoneylineLines, models.MoneylineLine{
			Book:      book,
			Sharp:     sharp,
			AwayPrice: awayPrice,
			HomePrice: homePrice,
		})
	}
}

// Total appends a total line.
func Total(book string, sharp bool, point, overPrice, underPrice float64) func(*models.NormalizedGame) {
	return func(g *models.NormalizedGame) {
		g.TotalLines = append(g.TotalLines, models.TotalLine{
			Book:       book,
			Sharp:      sharp,
			Point:      point,
			OverPrice:  overPrice,
			UnderPrice: underPrice,
		})
	}
}

// RawGameFixture builds a feed-shaped game. Markets are added per book via
// RawSpread/RawMoneyline.
func RawGameFixture(id, home, away string, books ...models.Bookmaker) models.RawGame {
	return models.RawGame{
		ID:           id,
		SportKey:     "basketball_nba",
		SportTitle:   "NBA",
		CommenceTime: Kickoff,
		HomeTeam:     home,
		AwayTeam:     away,
		Bookmakers:   books,
	}
}

// Book builds a bookmaker with the given markets.
func Book(key string, markets ...models.Market) models.Bookmaker {
	return models.Bookmaker{Key: key, Title: key, Markets: markets}
}

// RawSpread builds a two-sided spreads market.
func RawSpread(home, away string, awayPoint, awayPrice, homePrice float64) models.Market {
	homePoint := -awayPoint
	return models.Market{
		Key: "spreads",
		Outcomes: []models.Outcome{
			{Name: home, Price: homePrice, Point: &homePoint},
			{Name: away, Price: awayPrice, Point: &awayPoint},
		},
	}
}

// RawMoneyline builds a two-sided h2h market.
func RawMoneyline(home, away string, awayPrice, homePrice float64) models.Market {
	return models.Market{
		Key: "h2h",
		Outcomes: []models.Outcome{
			{Name: home, Price: homePrice},
			{Name: away, Price: awayPrice},
		},
	}
}

// RawTotal builds a two-sided totals market.
func RawTotal(point, overPrice, underPrice float64) models.Market {
	return models.Market{
		Key: "totals",
		Outcomes: []models.Outcome{
			{Name: "Over", Price: overPrice, Point: &point},
			{Name: "Under", Price: underPrice, Point: &point},
		},
	}
}
