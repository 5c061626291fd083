package models

import "time"

// AgentNote is one agent's contribution to a pick's model breakdown,
// reconstructed for explainability.
type AgentNote struct {
	Agent string `json:"agent"`
	Note  string `json:"note"`
}

// Pick is a ranked candidate bet that survived the consensus gate.
type Pick struct {
	ID           string    `json:"id"`
	ScanID       string    `json:"scan_id"`
	SportKey     string    `json:"sport_key"`
	Sport        string    `json:"sport"`
	Emoji        string    `json:"emoji"`
	GameID       string    `json:"game_id"`
	Matchup      string    `json:"matchup"`
	CommenceTime time.Time `json:"commence_time"`

	Bet    string `json:"bet"`    // e.g. "Boston Celtics -3.5"
	Market string `json:"market"` // spreads | h2h
	Odds   string `json:"odds"`   // best available price, e.g. "+120"

	Score      float64 `json:"score"`      // raw composite (ranking key)
	Confidence int     `json:"confidence"` // 55..90
	Edge       float64 `json:"edge"`       // displayed edge, 0..14

	// Suggested stake as percent of bankroll (quarter Kelly, capped).
	StakePct float64 `json:"stake_pct"`

	Breakdown []AgentNote `json:"breakdown"`
}

// ScanResult is the full output of one pipeline pass.
type ScanResult struct {
	ScanID       string                 `json:"scan_id"`
	GeneratedAt  time.Time              `json:"generated_at"`
	GamesScanned int                    `json:"games_scanned"`
	Picks        []Pick                 `json:"picks"`
	Arbitrage    []ArbitrageOpportunity `json:"arbitrage"`
}
