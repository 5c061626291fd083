package agents_test

import (
	"math"
	"testing"

	"github.com/grandrichlife727-design/edgebet-backend/internal/agents"
	"github.com/grandrichlife727-design/edgebet-backend/internal/testutil"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

func TestValueAgentSpreadEdgeArithmetic(t *testing.T) {
	// Away +150 at fanduel, +100 at draftkings, home -120 at both.
	// Consensus away price +125 → implied 100/225 = 0.444444
	// Consensus home price -120 → implied 120/220 = 0.545455
	// Devigged true away = 0.444444 / 0.989899 = 0.448980
	// Best away +150 → implied 0.40
	// Edge = (0.448980 - 0.40) * 100 = 4.8980
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 6.5, 150, -120),
		testutil.Spread("draftkings", false, 6.0, 100, -120),
	)

	agent := &agents.ValueAgent{}
	signals := agent.Analyze(game)

	if len(signals) != 1 {
		t.Fatalf("got %d signals, want 1: %+v", len(signals), signals)
	}

	sig := signals[0]
	if sig.Type != models.SignalSpreadValue {
		t.Fatalf("got signal type %q, want %q", sig.Type, models.SignalSpreadValue)
	}
	if sig.Team != game.AwayTeam {
		t.Errorf("got team %q, want away side %q", sig.Team, game.AwayTeam)
	}
	if sig.Price != 150 {
		t.Errorf("got price %.0f, want best price 150", sig.Price)
	}
	if sig.Point != 6.5 {
		t.Errorf("got point %.1f, want the best-price book's 6.5", sig.Point)
	}
	if math.Abs(sig.Edge-4.8980) > 0.0001 {
		t.Errorf("got edge %.6f, want 4.8980", sig.Edge)
	}
}

func TestValueAgentNoSignalWhenBestPriceBeaten(t *testing.T) {
	// Away +120 / +105, home -185 at both books: devigged true away
	// probability is ~0.4203 while the best price +120 implies 0.4545.
	// Negative edge, no pick.
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 3.5, 120, -185),
		testutil.Spread("draftkings", false, 3.5, 105, -185),
	)

	signals := (&agents.ValueAgent{}).Analyze(game)
	if len(signals) != 0 {
		t.Errorf("expected no signals, got %+v", signals)
	}
}

func TestValueAgentRequiresTwoBooks(t *testing.T) {
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 6.5, 200, -300),
	)

	if signals := (&agents.ValueAgent{}).Analyze(game); len(signals) != 0 {
		t.Errorf("single-book quotes cannot be cross-checked, got %+v", signals)
	}
}

func TestValueAgentMoneylineDogValue(t *testing.T) {
	// Away +300 / +150, home -250 at both.
	// Consensus away +225 → implied 100/325 = 0.307692
	// Consensus home -250 → implied 250/350 = 0.714286
	// True away = 0.307692 / 1.021978 = 0.301075
	// Best away +300 → implied 0.25; edge = 5.1075 and price is past +110.
	game := testutil.GameFixture(
		testutil.Moneyline("fanduel", false, 300, -250),
		testutil.Moneyline("draftkings", false, 150, -250),
	)

	signals := (&agents.ValueAgent{}).Analyze(game)
	if len(signals) != 1 {
		t.Fatalf("got %d signals, want 1: %+v", len(signals), signals)
	}

	sig := signals[0]
	if sig.Type != models.SignalMoneylineValue {
		t.Fatalf("got type %q, want %q", sig.Type, models.SignalMoneylineValue)
	}
	if sig.Team != game.AwayTeam {
		t.Errorf("got team %q, want away side", sig.Team)
	}
	if math.Abs(sig.Edge-5.1075) > 0.0005 {
		t.Errorf("got edge %.4f, want 5.1075", sig.Edge)
	}
}

func TestValueAgentSkipsDegenerateConsensus(t *testing.T) {
	// Mixed-sign prices average inside (-100, +100) where American odds are
	// undefined. The agent must skip the market, not panic.
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 3.5, 110, -110),
		testutil.Spread("draftkings", false, 3.5, -150, 130),
	)

	if signals := (&agents.ValueAgent{}).Analyze(game); len(signals) != 0 {
		t.Errorf("expected degenerate market to be skipped, got %+v", signals)
	}
}
