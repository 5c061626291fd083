package agents_test

import (
	"testing"

	"github.com/grandrichlife727-design/edgebet-backend/internal/agents"
	"github.com/grandrichlife727-design/edgebet-backend/internal/injuries"
	"github.com/grandrichlife727-design/edgebet-backend/internal/testutil"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

func TestInjuryAgentCleanBoard(t *testing.T) {
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 3.5, -110, -110),
		testutil.Spread("draftkings", false, 3.5, -108, -112),
		testutil.Moneyline("fanduel", false, 130, -120),
	)

	if signals := (&agents.InjuryAgent{}).Analyze(game); len(signals) != 0 {
		t.Errorf("clean board should be quiet, got %+v", signals)
	}
}

func TestInjuryAgentBlowoutSpread(t *testing.T) {
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 15.5, -110, -110),
	)

	signals := (&agents.InjuryAgent{}).Analyze(game)
	sig, found := findSignal(signals, models.SignalLineAnomaly)
	if !found {
		t.Fatalf("expected anomaly for a 15.5-point spread, got %+v", signals)
	}
	if sig.LineImpact != models.ImpactCheckReports {
		t.Errorf("got impact %q, want %q", sig.LineImpact, models.ImpactCheckReports)
	}
}

func TestInjuryAgentHeavyMoneylineJuice(t *testing.T) {
	game := testutil.GameFixture(
		testutil.Moneyline("fanduel", false, 130, -150),
	)

	signals := (&agents.InjuryAgent{}).Analyze(game)
	if _, found := findSignal(signals, models.SignalLineAnomaly); !found {
		t.Fatalf("expected anomaly for -150 moneyline juice, got %+v", signals)
	}
}

func TestInjuryAgentSpreadVariance(t *testing.T) {
	// Two full points of disagreement across three books reads as the
	// market digesting news.
	game := testutil.GameFixture(
		testutil.Spread("fanduel", false, 3.5, -110, -110),
		testutil.Spread("draftkings", false, 4.5, -110, -110),
		testutil.Spread("betmgm", false, 5.5, -110, -110),
	)

	signals := (&agents.InjuryAgent{}).Analyze(game)
	sig, found := findSignal(signals, models.SignalLineAnomaly)
	if !found {
		t.Fatalf("expected variance anomaly, got %+v", signals)
	}
	if sig.LineImpact != models.ImpactHighImpact {
		t.Errorf("got impact %q, want %q", sig.LineImpact, models.ImpactHighImpact)
	}
}

func TestInjuryAgentFeedEscalation(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantSignal bool
		wantImpact models.LineImpact
	}{
		{"Out", "Out", true, models.ImpactHighImpact},
		{"Out for season", "Out for season", true, models.ImpactHighImpact},
		{"Doubtful", "Doubtful", true, models.ImpactCheckReports},
		{"Questionable ignored", "Questionable", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := injuries.NewIndex(map[string][]injuries.Report{
				"Los Angeles Lakers": {{Player: "LeBron James", Status: tt.status, Position: "F"}},
			})
			agent := &agents.InjuryAgent{Reports: index}

			game := testutil.GameFixture(
				testutil.Spread("fanduel", false, 3.5, -110, -110),
			)

			signals := agent.Analyze(game)
			sig, found := findSignal(signals, models.SignalInjuryReport)
			if found != tt.wantSignal {
				t.Fatalf("signal present = %v, want %v (%+v)", found, tt.wantSignal, signals)
			}
			if !found {
				return
			}
			if sig.LineImpact != tt.wantImpact {
				t.Errorf("got impact %q, want %q", sig.LineImpact, tt.wantImpact)
			}
			if sig.Team != game.AwayTeam || sig.Player != "LeBron James" {
				t.Errorf("report attribution wrong: %+v", sig)
			}
		})
	}
}

func TestInjuryAgentNilIndexSafe(t *testing.T) {
	agent := &agents.InjuryAgent{Reports: nil}
	game := testutil.GameFixture(testutil.Spread("fanduel", false, 3.5, -110, -110))
	if signals := agent.Analyze(game); len(signals) != 0 {
		t.Errorf("nil index should yield no report signals, got %+v", signals)
	}
}
