package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/grandrichlife727-design/edgebet-backend/internal/repository"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

func scanWith(id string, picks ...models.Pick) models.ScanResult {
	return models.ScanResult{ScanID: id, Picks: picks}
}

func pick(id, sportKey string) models.Pick {
	return models.Pick{ID: id, SportKey: sportKey}
}

func TestMemoryLatestPicksNewestFirst(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	if err := store.SaveScan(ctx, scanWith("scan-1", pick("old", "basketball_nba"))); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveScan(ctx, scanWith("scan-2", pick("new", "basketball_nba"))); err != nil {
		t.Fatal(err)
	}

	picks, err := store.LatestPicks(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 2 || picks[0].ID != "new" || picks[1].ID != "old" {
		t.Errorf("want newest first, got %+v", picks)
	}
}

func TestMemoryLatestPicksLimit(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	if err := store.SaveScan(ctx, scanWith("scan-1",
		pick("a", "basketball_nba"),
		pick("b", "basketball_nba"),
		pick("c", "basketball_nba"),
	)); err != nil {
		t.Fatal(err)
	}

	picks, err := store.LatestPicks(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 2 {
		t.Errorf("got %d picks, want limit 2", len(picks))
	}
}

func TestMemoryPicksBySport(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	if err := store.SaveScan(ctx, scanWith("scan-1",
		pick("nba", "basketball_nba"),
		pick("nfl", "americanfootball_nfl"),
	)); err != nil {
		t.Fatal(err)
	}

	picks, err := store.PicksBySport(ctx, "americanfootball_nfl", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 1 || picks[0].ID != "nfl" {
		t.Errorf("sport filter broken: %+v", picks)
	}
}

func TestMemoryTrimsHistory(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if err := store.SaveScan(ctx, scanWith(fmt.Sprintf("scan-%d", i), pick(fmt.Sprintf("pick-%d", i), "basketball_nba"))); err != nil {
			t.Fatal(err)
		}
	}

	picks, err := store.LatestPicks(ctx, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 50 {
		t.Errorf("got %d picks, want retention cap of 50", len(picks))
	}
	if picks[0].ID != "pick-59" {
		t.Errorf("newest scan missing: %+v", picks[0])
	}
}
