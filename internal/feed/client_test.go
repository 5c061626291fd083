package feed_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grandrichlife727-design/edgebet-backend/internal/feed"
	"github.com/grandrichlife727-design/edgebet-backend/internal/testutil"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

func newClient(baseURL string) *feed.Client {
	return feed.NewClient(feed.Options{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Regions:        "us",
		Markets:        "spreads,totals,h2h",
		Timeout:        time.Second,
		RequestsPerSec: 100,
	}, zerolog.Nop())
}

func TestFetchOdds(t *testing.T) {
	games := []models.RawGame{
		testutil.RawGameFixture("game-1", "Boston Celtics", "Los Angeles Lakers",
			testutil.Book("fanduel", testutil.RawSpread("Boston Celtics", "Los Angeles Lakers", 3.5, -110, -110)),
		),
	}

	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"apiKey":     r.URL.Query().Get("apiKey"),
			"regions":    r.URL.Query().Get("regions"),
			"markets":    r.URL.Query().Get("markets"),
			"oddsFormat": r.URL.Query().Get("oddsFormat"),
		}
		json.NewEncoder(w).Encode(games)
	}))
	defer server.Close()

	got, err := newClient(server.URL).FetchOdds(context.Background(), "basketball_nba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/sports/basketball_nba/odds" {
		t.Errorf("got path %q", gotPath)
	}
	want := map[string]string{
		"apiKey":     "test-key",
		"regions":    "us",
		"markets":    "spreads,totals,h2h",
		"oddsFormat": "american",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}

	if len(got) != 1 || got[0].ID != "game-1" {
		t.Errorf("unexpected games: %+v", got)
	}
}

func TestFetchOddsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := newClient(server.URL).FetchOdds(context.Background(), "basketball_nba"); err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestFetchOddsBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newClient(server.URL)
	ctx := context.Background()

	// Five consecutive failures trip the breaker; the sixth call fails fast
	// without hitting the upstream.
	for i := 0; i < 5; i++ {
		if _, err := client.FetchOdds(ctx, "basketball_nba"); err == nil {
			t.Fatalf("call %d should have failed", i)
		}
	}

	server.Close()
	if _, err := client.FetchOdds(ctx, "basketball_nba"); err == nil {
		t.Fatal("expected the open breaker to reject the call")
	}
}
