package injuries_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandrichlife727-design/edgebet-backend/internal/injuries"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   injuries.Severity
	}{
		{"Out", injuries.SeverityOut},
		{"OUT (knee)", injuries.SeverityOut},
		{"Out for season", injuries.SeverityOut},
		{"Doubtful", injuries.SeverityDoubtful},
		{"Questionable", injuries.SeverityMinor},
		{"Probable", injuries.SeverityMinor},
		{"Day-to-day", injuries.SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := injuries.Classify(tt.status); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestReportsForMatching(t *testing.T) {
	index := injuries.NewIndex(map[string][]injuries.Report{
		"Los Angeles Lakers": {{Player: "LeBron James", Status: "Out"}},
		"Boston Celtics":     {{Player: "Jayson Tatum", Status: "Doubtful"}},
	})

	tests := []struct {
		name  string
		team  string
		found bool
	}{
		{"Exact", "Los Angeles Lakers", true},
		{"Case and punctuation", "los angeles lakers", true},
		{"Nickname only", "Lakers", true},
		{"Feed name longer", "The Boston Celtics", true},
		{"Unknown team", "Sacramento Kings", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := index.ReportsFor(tt.team)
			if got := len(reports) > 0; got != tt.found {
				t.Errorf("ReportsFor(%q) found = %v, want %v", tt.team, got, tt.found)
			}
		})
	}
}

func TestReportsForAmbiguousMatchDeterministic(t *testing.T) {
	// Two feed entries both match "Lakers". The resolution must not depend
	// on map iteration order: the first entry in sorted name order wins,
	// every single call.
	index := injuries.NewIndex(map[string][]injuries.Report{
		"LA Lakers":          {{Player: "Austin Reaves", Status: "Doubtful"}},
		"Los Angeles Lakers": {{Player: "LeBron James", Status: "Out"}},
	})

	for i := 0; i < 200; i++ {
		reports := index.ReportsFor("Lakers")
		if len(reports) != 1 || reports[0].Player != "Austin Reaves" {
			t.Fatalf("call %d resolved differently: %+v", i, reports)
		}
	}
}

func TestReportsForNilIndex(t *testing.T) {
	var index *injuries.Index
	if reports := index.ReportsFor("Los Angeles Lakers"); reports != nil {
		t.Errorf("nil index should return nil, got %+v", reports)
	}
}

func TestClientFetch(t *testing.T) {
	payload := map[string][]injuries.Report{
		"Los Angeles Lakers": {{Player: "LeBron James", Status: "Out", Position: "F"}},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := injuries.NewClient(server.URL, time.Second, zerolog.Nop())
	index := client.Fetch(context.Background())
	if index == nil {
		t.Fatal("expected an index")
	}
	if reports := index.ReportsFor("Lakers"); len(reports) != 1 || reports[0].Player != "LeBron James" {
		t.Errorf("unexpected reports: %+v", reports)
	}
}

func TestClientFetchDegradesToNil(t *testing.T) {
	t.Run("Empty URL", func(t *testing.T) {
		client := injuries.NewClient("", time.Second, zerolog.Nop())
		if index := client.Fetch(context.Background()); index != nil {
			t.Error("empty URL should disable the feed")
		}
	})

	t.Run("Server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := injuries.NewClient(server.URL, time.Second, zerolog.Nop())
		if index := client.Fetch(context.Background()); index != nil {
			t.Error("feed errors should degrade to nil")
		}
	})
}
