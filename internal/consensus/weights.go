package consensus

// Weights is the canonical agent weighting table. It is injectable through
// config so calibration changes never touch scoring code; every contribution
// is capped independently before summing.
type Weights struct {
	ValueMultiplier float64 `yaml:"value_multiplier"`
	ValueCap        float64 `yaml:"value_cap"`

	LineMoveStrong   float64 `yaml:"line_move_strong"`
	LineMoveModerate float64 `yaml:"line_move_moderate"`
	LineMoveWeak     float64 `yaml:"line_move_weak"`

	PublicHeavy    float64 `yaml:"public_heavy"`
	PublicLean     float64 `yaml:"public_lean"`
	PublicBase     float64 `yaml:"public_base"`
	PublicHeavyPct int     `yaml:"public_heavy_pct"`
	PublicLeanPct  int     `yaml:"public_lean_pct"`

	SharpStrong   float64 `yaml:"sharp_strong"`
	SharpModerate float64 `yaml:"sharp_moderate"`
	SharpWeak     float64 `yaml:"sharp_weak"`
	RLMBonus      float64 `yaml:"rlm_bonus"`

	InjuryHighImpact   float64 `yaml:"injury_high_impact"`
	InjuryCheckReports float64 `yaml:"injury_check_reports"`

	SituationalStrong   float64 `yaml:"situational_strong"`
	SituationalModerate float64 `yaml:"situational_moderate"`
	SituationalWeak     float64 `yaml:"situational_weak"`

	ConfidenceSlope  float64 `yaml:"confidence_slope"`
	ConfidenceOffset float64 `yaml:"confidence_offset"`
	ConfidenceFloor  int     `yaml:"confidence_floor"`
	ConfidenceCap    int     `yaml:"confidence_cap"`

	EdgeScale float64 `yaml:"edge_scale"`
	EdgeCap   float64 `yaml:"edge_cap"`

	MinConfidence float64 `yaml:"min_confidence"`
	MinEdge       float64 `yaml:"min_edge"`

	TopN int `yaml:"top_n"`
}

// DefaultWeights returns the production weighting table.
func DefaultWeights() Weights {
	return Weights{
		ValueMultiplier: 4.5,
		ValueCap:        35,

		LineMoveStrong:   20,
		LineMoveModerate: 12,
		LineMoveWeak:     6,

		PublicHeavy:    20,
		PublicLean:     13,
		PublicBase:     7,
		PublicHeavyPct: 68,
		PublicLeanPct:  60,

		SharpStrong:   22,
		SharpModerate: 13,
		SharpWeak:     7,
		RLMBonus:      5,

		InjuryHighImpact:   -15,
		InjuryCheckReports: -10,

		SituationalStrong:   15,
		SituationalModerate: 9,
		SituationalWeak:     5,

		ConfidenceSlope:  0.65,
		ConfidenceOffset: 20,
		ConfidenceFloor:  55,
		ConfidenceCap:    90,

		EdgeScale: 0.88,
		EdgeCap:   14,

		MinConfidence: 65,
		MinEdge:       3.5,

		TopN: 10,
	}
}
