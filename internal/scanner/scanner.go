// Package scanner orchestrates one full pipeline pass: concurrent per-sport
// fetch, normalization, the agent pipeline, consensus ranking and the
// arbitrage scan. Scoring itself is a single synchronous pass with no shared
// mutable state between games or agents.
package scanner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/grandrichlife727-design/edgebet-backend/internal/agents"
	"github.com/grandrichlife727-design/edgebet-backend/internal/arbitrage"
	"github.com/grandrichlife727-design/edgebet-backend/internal/cache"
	"github.com/grandrichlife727-design/edgebet-backend/internal/config"
	"github.com/grandrichlife727-design/edgebet-backend/internal/consensus"
	"github.com/grandrichlife727-design/edgebet-backend/internal/injuries"
	"github.com/grandrichlife727-design/edgebet-backend/internal/normalizer"
	"github.com/grandrichlife727-design/edgebet-backend/internal/repository"
	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// ErrNoData is returned when every sport came back empty: a distinct
// condition from an internal computation fault.
var ErrNoData = errors.New("no odds data available from any sport")

// OddsSource supplies raw games per sport.
type OddsSource interface {
	FetchOdds(ctx context.Context, sportKey string) ([]models.RawGame, error)
}

// InjurySource supplies the optional per-scan injury snapshot.
type InjurySource interface {
	Fetch(ctx context.Context) *injuries.Index
}

// Scanner wires the pipeline together.
type Scanner struct {
	feed         OddsSource
	injuryFeed   InjurySource
	normalizer   *normalizer.Normalizer
	scorer       *consensus.Scorer
	arbitrage    *arbitrage.Detector
	store        repository.PickStore
	cache        *cache.ScanCache
	sports       []config.Sport
	fetchTimeout time.Duration
	logger       zerolog.Logger
}

// New builds a scanner. injuryFeed may be nil.
func New(
	feed OddsSource,
	injuryFeed InjurySource,
	norm *normalizer.Normalizer,
	scorer *consensus.Scorer,
	store repository.PickStore,
	scanCache *cache.ScanCache,
	sports []config.Sport,
	fetchTimeout time.Duration,
	logger zerolog.Logger,
) *Scanner {
	return &Scanner{
		feed:         feed,
		injuryFeed:   injuryFeed,
		normalizer:   norm,
		scorer:       scorer,
		arbitrage:    arbitrage.New(),
		store:        store,
		cache:        scanCache,
		sports:       sports,
		fetchTimeout: fetchTimeout,
		logger:       logger.With().Str("component", "scanner").Logger(),
	}
}

// Latest serves the cached scan when one is fresh, otherwise runs a new one.
func (s *Scanner) Latest(ctx context.Context) (models.ScanResult, error) {
	if result, ok := s.cache.Get(ctx); ok {
		return result, nil
	}
	return s.Scan(ctx)
}

// Scan runs one full pipeline pass. Individual sport failures degrade to
// zero games for that sport; only total data absence is an error.
func (s *Scanner) Scan(ctx context.Context) (models.ScanResult, error) {
	started := time.Now()

	games := s.fetchAll(ctx)
	if len(games) == 0 {
		return models.ScanResult{}, ErrNoData
	}

	var reports *injuries.Index
	if s.injuryFeed != nil {
		reports = s.injuryFeed.Fetch(ctx)
	}

	registry := agents.NewRegistry(&agents.InjuryAgent{Reports: reports})

	analyses := make([]consensus.GameAnalysis, 0, len(games))
	for _, game := range games {
		analyses = append(analyses, consensus.GameAnalysis{
			Game:    game,
			Signals: registry.Analyze(game),
		})
	}

	result := models.ScanResult{
		ScanID:       uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		GamesScanned: len(games),
		Picks:        s.scorer.Rank(analyses),
		Arbitrage:    s.arbitrage.Detect(games),
	}

	for i := range result.Picks {
		result.Picks[i].ID = uuid.NewString()
		result.Picks[i].ScanID = result.ScanID
	}

	if s.store != nil {
		if err := s.store.SaveScan(ctx, result); err != nil {
			s.logger.Warn().Err(err).Msg("persisting scan history failed")
		}
	}
	s.cache.Set(ctx, result)

	s.logger.Info().
		Int("games", result.GamesScanned).
		Int("picks", len(result.Picks)).
		Int("arbs", len(result.Arbitrage)).
		Dur("elapsed", time.Since(started)).
		Msg("scan complete")

	return result, nil
}

// fetchAll fans out one fetch per sport and merges the normalized games in
// sport order, then feed order, so output is deterministic. A failed or
// timed-out sport contributes zero games.
func (s *Scanner) fetchAll(ctx context.Context) []models.NormalizedGame {
	results := make([][]models.NormalizedGame, len(s.sports))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, sport := range s.sports {
		i, sport := i, sport
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(groupCtx, s.fetchTimeout)
			defer cancel()

			raw, err := s.feed.FetchOdds(fetchCtx, sport.Key)
			if err != nil {
				s.logger.Warn().Err(err).Str("sport", sport.Key).Msg("sport fetch degraded to zero games")
				return nil
			}

			normalized := make([]models.NormalizedGame, 0, len(raw))
			for _, game := range raw {
				normalized = append(normalized, s.normalizer.Normalize(game, sport.Label, sport.Emoji))
			}
			results[i] = normalized
			return nil
		})
	}

	// Fetch goroutines never return errors; Wait only observes ctx.
	_ = g.Wait()

	var merged []models.NormalizedGame
	for _, games := range results {
		merged = append(merged, games...)
	}
	return merged
}
