package models

import "time"

// RawGame is one event as delivered by the odds feed (The Odds API v4 shape).
// It is parsed, handed to the normalizer, and discarded.
type RawGame struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quote set for a game.
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Markets    []Market  `json:"markets"`
}

// Market is one market (spreads, totals, h2h) quoted by a book.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one side of a market. Price is American odds; Point is only
// present for spreads and totals.
type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// NormalizedGame is the core entity the agents and the arbitrage detector
// consume. Built once per scan, read-only afterward.
type NormalizedGame struct {
	GameID       string    `json:"game_id"`
	SportKey     string    `json:"sport_key"`
	Sport        string    `json:"sport"` // display label, e.g. "NBA"
	Emoji        string    `json:"emoji"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`

	SpreadLines    []SpreadLine    `json:"spread_lines"`
	TotalLines     []TotalLine     `json:"total_lines"`
	MoneylineLines []MoneylineLine `json:"moneyline_lines"`
}

// Matchup returns the conventional "Away @ Home" description.
func (g NormalizedGame) Matchup() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

// SpreadLine is one book's two-sided spread quote. A line only exists when
// both the home and away outcome parsed; partial quotes are dropped.
type SpreadLine struct {
	Book      string  `json:"book"`
	Sharp     bool    `json:"sharp"`
	HomePoint float64 `json:"home_point"`
	AwayPoint float64 `json:"away_point"`
	HomePrice float64 `json:"home_price"`
	AwayPrice float64 `json:"away_price"`
}

// TotalLine is one book's two-sided total (over/under) quote.
type TotalLine struct {
	Book       string  `json:"book"`
	Sharp      bool    `json:"sharp"`
	Point      float64 `json:"point"`
	OverPrice  float64 `json:"over_price"`
	UnderPrice float64 `json:"under_price"`
}

// MoneylineLine is one book's two-sided moneyline quote.
type MoneylineLine struct {
	Book      string  `json:"book"`
	Sharp     bool    `json:"sharp"`
	HomePrice float64 `json:"home_price"`
	AwayPrice float64 `json:"away_price"`
}
