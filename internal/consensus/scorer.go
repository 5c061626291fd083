// Package consensus combines per-agent signals into one weighted composite
// score per candidate bet, gates on confidence and edge, and ranks the
// survivors.
package consensus

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/oddsmath"
)

// GameAnalysis pairs a normalized game with the pooled output of every
// agent that ran against it.
type GameAnalysis struct {
	Game    models.NormalizedGame
	Signals []models.Signal
}

// Scorer ranks value-agent candidates using the configured weight table.
// One deterministic pass, no state between calls.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer with the given weight table.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Rank scores every value candidate across all games, applies the admission
// gate (confidence and displayed edge), sorts descending by raw composite
// score, and returns the top N as picks. Ties break on displayed edge, then
// earlier commence time, then game ID.
func (s *Scorer) Rank(analyses []GameAnalysis) []models.Pick {
	var picks []models.Pick

	for _, analysis := range analyses {
		for _, signal := range analysis.Signals {
			if signal.Agent != models.AgentValue {
				continue
			}

			pick, ok := s.score(analysis.Game, signal, analysis.Signals)
			if ok {
				picks = append(picks, pick)
			}
		}
	}

	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].Score != picks[j].Score {
			return picks[i].Score > picks[j].Score
		}
		if picks[i].Edge != picks[j].Edge {
			return picks[i].Edge > picks[j].Edge
		}
		if !picks[i].CommenceTime.Equal(picks[j].CommenceTime) {
			return picks[i].CommenceTime.Before(picks[j].CommenceTime)
		}
		return picks[i].GameID < picks[j].GameID
	})

	if len(picks) > s.weights.TopN {
		picks = picks[:s.weights.TopN]
	}

	return picks
}

// score computes one candidate's composite score and builds its pick,
// returning ok=false when the candidate fails the admission gate.
func (s *Scorer) score(game models.NormalizedGame, value models.Signal, signals []models.Signal) (models.Pick, bool) {
	w := s.weights
	team := value.Team

	var breakdown []models.AgentNote

	valuePoints := math.Min(value.Edge*w.ValueMultiplier, w.ValueCap)
	total := valuePoints
	breakdown = append(breakdown, models.AgentNote{
		Agent: models.AgentValue,
		Note:  fmt.Sprintf("+%.1f: %s", valuePoints, value.Description),
	})

	if sig, ok := strongestMatch(signals, models.AgentLineMovement, team); ok {
		points := tierPoints(sig.Strength, w.LineMoveStrong, w.LineMoveModerate, w.LineMoveWeak)
		total += points
		breakdown = append(breakdown, models.AgentNote{
			Agent: models.AgentLineMovement,
			Note:  fmt.Sprintf("+%.1f: %s", points, sig.Description),
		})
	}

	if sig, ok := publicSignal(signals); ok && sig.ContrarianSide == team {
		points := w.PublicBase
		switch {
		case sig.PublicPct > w.PublicHeavyPct:
			points = w.PublicHeavy
		case sig.PublicPct > w.PublicLeanPct:
			points = w.PublicLean
		}
		total += points
		breakdown = append(breakdown, models.AgentNote{
			Agent: models.AgentPublicMoney,
			Note:  fmt.Sprintf("+%.1f: contrarian side against %s", points, sig.Description),
		})
	}

	if sig, ok := strongestSharpMatch(signals, team); ok {
		points := tierPoints(sig.Strength, w.SharpStrong, w.SharpModerate, w.SharpWeak)
		if sig.RLMDetected {
			points += w.RLMBonus
		}
		total += points
		breakdown = append(breakdown, models.AgentNote{
			Agent: models.AgentSharpMoney,
			Note:  fmt.Sprintf("+%.1f: %s", points, sig.Description),
		})
	}

	if impact, descriptions := worstInjuryImpact(signals); impact != models.ImpactNone {
		penalty := w.InjuryCheckReports
		if impact == models.ImpactHighImpact {
			penalty = w.InjuryHighImpact
		}
		total += penalty
		breakdown = append(breakdown, models.AgentNote{
			Agent: models.AgentInjury,
			Note:  fmt.Sprintf("%.1f: %s", penalty, strings.Join(descriptions, "; ")),
		})
	}

	if sig, ok := strongestMatch(signals, models.AgentSituational, team); ok {
		points := tierPoints(sig.Strength, w.SituationalStrong, w.SituationalModerate, w.SituationalWeak)
		total += points
		breakdown = append(breakdown, models.AgentNote{
			Agent: models.AgentSituational,
			Note:  fmt.Sprintf("+%.1f: %s", points, sig.Description),
		})
	}

	confidence := int(math.Round(total*w.ConfidenceSlope + w.ConfidenceOffset))
	if confidence < w.ConfidenceFloor {
		confidence = w.ConfidenceFloor
	}
	if confidence > w.ConfidenceCap {
		confidence = w.ConfidenceCap
	}

	edge := math.Round(value.Edge*w.EdgeScale*10) / 10
	if edge < 0 {
		edge = 0
	}
	if edge > w.EdgeCap {
		edge = w.EdgeCap
	}

	// Sole admission gate.
	if float64(confidence) < w.MinConfidence || edge < w.MinEdge {
		return models.Pick{}, false
	}

	return models.Pick{
		SportKey:     game.SportKey,
		Sport:        game.Sport,
		Emoji:        game.Emoji,
		GameID:       game.GameID,
		Matchup:      game.Matchup(),
		CommenceTime: game.CommenceTime,
		Bet:          betText(game, value),
		Market:       value.Market,
		Odds:         oddsmath.FormatAmerican(value.Price),
		Score:        total,
		Confidence:   confidence,
		Edge:         edge,
		StakePct:     stakeSuggestion(value),
		Breakdown:    breakdown,
	}, true
}

// betText renders the bet the candidate proposes.
func betText(game models.NormalizedGame, value models.Signal) string {
	if value.Type == models.SignalMoneylineValue {
		return value.Team + " ML"
	}
	return fmt.Sprintf("%s %+.1f", value.Team, value.Point)
}

// stakeSuggestion derives a conservative Kelly stake from the candidate's
// best price and the consensus true probability it was measured against.
func stakeSuggestion(value models.Signal) float64 {
	implied, err := oddsmath.ImpliedProbability(value.Price)
	if err != nil {
		return 0
	}
	return oddsmath.SuggestedStakePct(value.Price, implied+value.Edge/100.0)
}

func tierPoints(strength models.Strength, strong, moderate, weak float64) float64 {
	switch strength {
	case models.StrengthStrong:
		return strong
	case models.StrengthModerate:
		return moderate
	default:
		return weak
	}
}

// strongestMatch returns the highest-tier signal from the given agent that
// favors the candidate's team.
func strongestMatch(signals []models.Signal, agent, team string) (models.Signal, bool) {
	var best models.Signal
	found := false
	for _, sig := range signals {
		if sig.Agent != agent || sig.Team != team {
			continue
		}
		if !found || tierRank(sig.Strength) > tierRank(best.Strength) {
			best = sig
			found = true
		}
	}
	return best, found
}

// strongestSharpMatch prefers RLM signals over juice imbalance at equal tier
// so the bonus is never lost to ordering.
func strongestSharpMatch(signals []models.Signal, team string) (models.Signal, bool) {
	var best models.Signal
	found := false
	for _, sig := range signals {
		if sig.Agent != models.AgentSharpMoney || sig.SharpSide != team {
			continue
		}
		if !found || tierRank(sig.Strength) > tierRank(best.Strength) ||
			(tierRank(sig.Strength) == tierRank(best.Strength) && sig.RLMDetected && !best.RLMDetected) {
			best = sig
			found = true
		}
	}
	return best, found
}

func publicSignal(signals []models.Signal) (models.Signal, bool) {
	for _, sig := range signals {
		if sig.Agent == models.AgentPublicMoney {
			return sig, true
		}
	}
	return models.Signal{}, false
}

// worstInjuryImpact folds all injury signals into the single worst
// classification plus the reasons behind it.
func worstInjuryImpact(signals []models.Signal) (models.LineImpact, []string) {
	impact := models.ImpactNone
	var descriptions []string
	for _, sig := range signals {
		if sig.Agent != models.AgentInjury {
			continue
		}
		descriptions = append(descriptions, sig.Description)
		if impactRank(sig.LineImpact) > impactRank(impact) {
			impact = sig.LineImpact
		}
	}
	return impact, descriptions
}

func tierRank(strength models.Strength) int {
	switch strength {
	case models.StrengthStrong:
		return 3
	case models.StrengthModerate:
		return 2
	case models.StrengthWeak:
		return 1
	default:
		return 0
	}
}

func impactRank(impact models.LineImpact) int {
	switch impact {
	case models.ImpactHighImpact:
		return 2
	case models.ImpactCheckReports:
		return 1
	default:
		return 0
	}
}
