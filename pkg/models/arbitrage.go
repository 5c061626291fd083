package models

import "time"

// ArbitrageLeg is one side of a two-leg arbitrage, placed at a single book.
type ArbitrageLeg struct {
	Book        string   `json:"book"`
	Outcome     string   `json:"outcome"`
	Price       float64  `json:"price"` // American odds
	Point       *float64 `json:"point,omitempty"`
	ImpliedProb float64  `json:"implied_prob"`
	StakePct    float64  `json:"stake_pct"` // percent of the total outlay
}

// ArbitrageOpportunity is a pair of opposing lines from different books whose
// combined implied probabilities leave a guaranteed margin. Legs always come
// from distinct books and stake percentages sum to 100.
type ArbitrageOpportunity struct {
	GameID       string          `json:"game_id"`
	SportKey     string          `json:"sport_key"`
	Sport        string          `json:"sport"`
	Matchup      string          `json:"matchup"`
	CommenceTime time.Time       `json:"commence_time"`
	Market       string          `json:"market"` // spreads | h2h
	TotalImplied float64         `json:"total_implied"`
	ProfitPct    float64         `json:"profit_pct"`
	Legs         [2]ArbitrageLeg `json:"legs"`
}
