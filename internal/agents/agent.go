package agents

import (
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// Agent is a single analyzer over one normalized game. Implementations are
// pure functions of their input: no shared mutable state, safe to invoke in
// isolation, zero or more signals out.
type Agent interface {
	Name() string
	Analyze(game models.NormalizedGame) []models.Signal
}

// Registry is the fixed set of agents run for every game, in a stable order
// so pipeline output is deterministic.
type Registry struct {
	agents []Agent
}

// NewRegistry assembles the standard six-agent lineup. The injury agent's
// report index may be nil when no injury feed is configured.
func NewRegistry(injury *InjuryAgent) *Registry {
	return &Registry{
		agents: []Agent{
			&ValueAgent{},
			&LineMovementAgent{},
			&PublicMoneyAgent{},
			&SharpMoneyAgent{},
			injury,
			&SituationalAgent{},
		},
	}
}

// Analyze runs every agent against the game and pools their signals.
func (r *Registry) Analyze(game models.NormalizedGame) []models.Signal {
	var signals []models.Signal
	for _, agent := range r.agents {
		signals = append(signals, agent.Analyze(game)...)
	}
	return signals
}

// mean averages a slice, returning ok=false for empty input so callers can
// skip the computation instead of propagating NaN.
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
