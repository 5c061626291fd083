// Package normalizer turns raw per-bookmaker feed quotes into the line sets
// the agents and the arbitrage detector consume.
package normalizer

import (
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// Market keys as delivered by the odds feed.
const (
	MarketSpreads   = "spreads"
	MarketTotals    = "totals"
	MarketMoneyline = "h2h"
)

// Normalizer builds NormalizedGames. The sharp-book set is injected at
// construction; the sharp flag is stamped on every line here and never
// recomputed downstream.
type Normalizer struct {
	sharpBooks map[string]bool
}

// New builds a normalizer with the given sharp-book keys.
func New(sharpBooks []string) *Normalizer {
	set := make(map[string]bool, len(sharpBooks))
	for _, book := range sharpBooks {
		set[book] = true
	}
	return &Normalizer{sharpBooks: set}
}

// IsSharpBook reports whether a book key is in the configured sharp set.
func (n *Normalizer) IsSharpBook(bookKey string) bool {
	return n.sharpBooks[bookKey]
}

// Normalize produces one NormalizedGame from a raw feed record. A line is
// only added when both sides of its market parsed; partial quotes are
// dropped silently.
func (n *Normalizer) Normalize(raw models.RawGame, sportLabel, emoji string) models.NormalizedGame {
	game := models.NormalizedGame{
		GameID:       raw.ID,
		SportKey:     raw.SportKey,
		Sport:        sportLabel,
		Emoji:        emoji,
		HomeTeam:     raw.HomeTeam,
		AwayTeam:     raw.AwayTeam,
		CommenceTime: raw.CommenceTime,
	}

	for _, book := range raw.Bookmakers {
		sharp := n.sharpBooks[book.Key]

		for _, market := range book.Markets {
			switch market.Key {
			case MarketSpreads:
				if line, ok := parseSpread(book.Key, sharp, market, raw); ok {
					game.SpreadLines = append(game.SpreadLines, line)
				}
			case MarketTotals:
				if line, ok := parseTotal(book.Key, sharp, market); ok {
					game.TotalLines = append(game.TotalLines, line)
				}
			case MarketMoneyline:
				if line, ok := parseMoneyline(book.Key, sharp, market, raw); ok {
					game.MoneylineLines = append(game.MoneylineLines, line)
				}
			}
		}
	}

	return game
}

// parseSpread matches outcomes to the home and away team by exact name.
func parseSpread(bookKey string, sharp bool, market models.Market, raw models.RawGame) (models.SpreadLine, bool) {
	home := findOutcome(market.Outcomes, raw.HomeTeam)
	away := findOutcome(market.Outcomes, raw.AwayTeam)
	if home == nil || away == nil || home.Point == nil || away.Point == nil {
		return models.SpreadLine{}, false
	}

	return models.SpreadLine{
		Book:      bookKey,
		Sharp:     sharp,
		HomePoint: *home.Point,
		AwayPoint: *away.Point,
		HomePrice: home.Price,
		AwayPrice: away.Price,
	}, true
}

func parseTotal(bookKey string, sharp bool, market models.Market) (models.TotalLine, bool) {
	over := findOutcome(market.Outcomes, "Over")
	under := findOutcome(market.Outcomes, "Under")
	if over == nil || under == nil || over.Point == nil {
		return models.TotalLine{}, false
	}

	return models.TotalLine{
		Book:       bookKey,
		Sharp:      sharp,
		Point:      *over.Point,
		OverPrice:  over.Price,
		UnderPrice: under.Price,
	}, true
}

func parseMoneyline(bookKey string, sharp bool, market models.Market, raw models.RawGame) (models.MoneylineLine, bool) {
	home := findOutcome(market.Outcomes, raw.HomeTeam)
	away := findOutcome(market.Outcomes, raw.AwayTeam)
	if home == nil || away == nil {
		return models.MoneylineLine{}, false
	}

	return models.MoneylineLine{
		Book:      bookKey,
		Sharp:     sharp,
		HomePrice: home.Price,
		AwayPrice: away.Price,
	}, true
}

func findOutcome(outcomes []models.Outcome, name string) *models.Outcome {
	for i := range outcomes {
		if outcomes[i].Name == name {
			return &outcomes[i]
		}
	}
	return nil
}
