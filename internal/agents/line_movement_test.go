package agents_test

import (
	"testing"

	"github.com/grandrichlife727-design/edgebet-backend/internal/agents"
	"github.com/grandrichlife727-design/edgebet-backend/internal/testutil"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

func findSignal(signals []models.Signal, sigType string) (models.Signal, bool) {
	for _, sig := range signals {
		if sig.Type == sigType {
			return sig, true
		}
	}
	return models.Signal{}, false
}

func TestLineMovementRangeTiers(t *testing.T) {
	tests := []struct {
		name       string
		points     []float64
		wantSignal bool
		want       models.Strength
	}{
		{"Below threshold", []float64{3.5, 3.5}, false, ""},
		{"Weak", []float64{3.0, 3.5}, true, models.StrengthWeak},
		{"Moderate", []float64{3.0, 4.0}, true, models.StrengthModerate},
		{"Strong", []float64{3.0, 4.5}, true, models.StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var overrides []func(*models.NormalizedGame)
			books := []string{"fanduel", "draftkings", "betmgm"}
			for i, point := range tt.points {
				overrides = append(overrides, testutil.Spread(books[i], false, point, -110, -110))
			}
			game := testutil.GameFixture(overrides...)

			signals := (&agents.LineMovementAgent{}).Analyze(game)
			sig, found := findSignal(signals, models.SignalLineRange)

			if found != tt.wantSignal {
				t.Fatalf("signal present = %v, want %v (%+v)", found, tt.wantSignal, signals)
			}
			if !found {
				return
			}
			if sig.Strength != tt.want {
				t.Errorf("got strength %q, want %q", sig.Strength, tt.want)
			}
			if sig.Team != game.AwayTeam {
				t.Errorf("range signal should carry the away side, got %q", sig.Team)
			}

			// Most favorable away line on the board.
			max := tt.points[0]
			for _, p := range tt.points {
				if p > max {
					max = p
				}
			}
			if sig.Point != max {
				t.Errorf("got point %.1f, want %.1f", sig.Point, max)
			}
		})
	}
}

func TestLineMovementSharpVsSquare(t *testing.T) {
	tests := []struct {
		name        string
		sharpPoint  float64
		squarePoint float64
		wantSignal  bool
		wantSide    string // "away" or "home"
		want        models.Strength
	}{
		{"No divergence", 3.5, 3.5, false, "", ""},
		{"Moderate toward away", 4.0, 3.5, true, "away", models.StrengthModerate},
		{"Strong toward away", 4.5, 3.5, true, "away", models.StrengthStrong},
		{"Strong toward home", 3.5, 4.5, true, "home", models.StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.GameFixture(
				testutil.Spread("pinnacle", true, tt.sharpPoint, -110, -110),
				testutil.Spread("fanduel", false, tt.squarePoint, -110, -110),
			)

			signals := (&agents.LineMovementAgent{}).Analyze(game)
			sig, found := findSignal(signals, models.SignalSharpVsSquare)

			if found != tt.wantSignal {
				t.Fatalf("signal present = %v, want %v (%+v)", found, tt.wantSignal, signals)
			}
			if !found {
				return
			}

			wantTeam := game.AwayTeam
			if tt.wantSide == "home" {
				wantTeam = game.HomeTeam
			}
			if sig.SharpSide != wantTeam {
				t.Errorf("got sharp side %q, want %q", sig.SharpSide, wantTeam)
			}
			if sig.Strength != tt.want {
				t.Errorf("got strength %q, want %q", sig.Strength, tt.want)
			}
		})
	}
}

func TestLineMovementRequiresTwoBooks(t *testing.T) {
	game := testutil.GameFixture(testutil.Spread("fanduel", false, 3.5, -110, -110))
	if signals := (&agents.LineMovementAgent{}).Analyze(game); len(signals) != 0 {
		t.Errorf("expected no signals with one book, got %+v", signals)
	}
}
