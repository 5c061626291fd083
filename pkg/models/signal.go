package models

// Agent identifiers used in signals and pick breakdowns.
const (
	AgentValue        = "value"
	AgentLineMovement = "line_movement"
	AgentPublicMoney  = "public_money"
	AgentSharpMoney   = "sharp_money"
	AgentInjury       = "injury"
	AgentSituational  = "situational"
)

// Signal types.
const (
	SignalSpreadValue    = "spread_value"
	SignalMoneylineValue = "ml_value"
	SignalLineRange      = "line_range"
	SignalSharpVsSquare  = "sharp_vs_square"
	SignalPublicLean     = "public_lean"
	SignalRLM            = "rlm"
	SignalJuiceImbalance = "juice_imbalance"
	SignalLineAnomaly    = "line_anomaly"
	SignalInjuryReport   = "injury_report"
	SignalRoadDog        = "road_dog"
	SignalHomeChalkFade  = "home_chalk_fade"
	SignalBigDogML       = "big_dog_ml"
)

// Strength tiers a signal can carry.
type Strength string

const (
	StrengthWeak     Strength = "weak"
	StrengthModerate Strength = "moderate"
	StrengthStrong   Strength = "strong"
)

// LineImpact classifies the injury agent's read of the line shape. It is
// consumed as a scoring penalty by the consensus scorer.
type LineImpact string

const (
	ImpactNone         LineImpact = "none"
	ImpactCheckReports LineImpact = "check_reports"
	ImpactHighImpact   LineImpact = "high_impact"
)

// Signal is one agent's structured observation about a game. Fields beyond
// Agent/Type/Description are populated per signal type; signals are ephemeral
// and consumed within a single scoring pass.
type Signal struct {
	Agent       string   `json:"agent"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Strength    Strength `json:"strength,omitempty"`

	// Side the signal favors, by team name.
	Team   string `json:"team,omitempty"`
	Market string `json:"market,omitempty"`

	// Value signals.
	Price float64 `json:"price,omitempty"` // best available American price
	Point float64 `json:"point,omitempty"`
	Edge  float64 `json:"edge,omitempty"` // percentage points vs true prob

	// Public money.
	PublicSide     string `json:"public_side,omitempty"`
	ContrarianSide string `json:"contrarian_side,omitempty"`
	PublicPct      int    `json:"public_pct,omitempty"`

	// Sharp money.
	SharpSide   string `json:"sharp_side,omitempty"`
	RLMDetected bool   `json:"rlm_detected,omitempty"`

	// Injury / anomaly.
	LineImpact LineImpact `json:"line_impact,omitempty"`
	Player     string     `json:"player,omitempty"`
	Status     string     `json:"status,omitempty"`
}
