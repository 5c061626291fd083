package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/grandrichlife727-design/edgebet-backend/internal/cache"
	"github.com/grandrichlife727-design/edgebet-backend/internal/config"
	"github.com/grandrichlife727-design/edgebet-backend/internal/consensus"
	"github.com/grandrichlife727-design/edgebet-backend/internal/feed"
	"github.com/grandrichlife727-design/edgebet-backend/internal/handlers"
	"github.com/grandrichlife727-design/edgebet-backend/internal/injuries"
	"github.com/grandrichlife727-design/edgebet-backend/internal/normalizer"
	"github.com/grandrichlife727-design/edgebet-backend/internal/repository"
	"github.com/grandrichlife727-design/edgebet-backend/internal/scanner"
)

func main() {
	fmt.Println("=== EdgeBet Scan Engine ===")

	// .env is a local-dev convenience; absence is fine.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.OddsAPIKey == "" {
		fmt.Println("⚠️  ODDS_API_KEY is not set; upstream fetches will fail")
	}

	// Pick history store: Postgres when configured, in-memory otherwise.
	var store repository.PickStore
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("❌ Failed to connect to Postgres: %v\n", err)
			os.Exit(1)
		}
		if err := pg.Ping(context.Background()); err != nil {
			fmt.Printf("❌ Postgres ping failed: %v\n", err)
			os.Exit(1)
		}
		store = pg
		fmt.Println("✓ Connected to Postgres")
	} else {
		store = repository.NewMemory()
		fmt.Println("✓ Using in-memory pick store")
	}
	defer store.Close()

	// Scan cache: optional.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fmt.Printf("❌ Failed to parse Redis URL: %v\n", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		fmt.Println("✓ Connected to Redis")
	}
	scanCache := cache.New(redisClient, cfg.CacheTTL, logger)

	feedClient := feed.NewClient(feed.Options{
		BaseURL:        cfg.OddsAPIBaseURL,
		APIKey:         cfg.OddsAPIKey,
		Regions:        cfg.Regions,
		Markets:        cfg.Markets,
		Timeout:        cfg.FetchTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
	}, logger)

	var injuryFeed scanner.InjurySource
	if cfg.InjuryFeedURL != "" {
		injuryFeed = injuries.NewClient(cfg.InjuryFeedURL, cfg.FetchTimeout, logger)
		fmt.Println("✓ Injury feed enabled")
	}

	scan := scanner.New(
		feedClient,
		injuryFeed,
		normalizer.New(cfg.SharpBooks),
		consensus.NewScorer(cfg.Weights),
		store,
		scanCache,
		cfg.Sports,
		cfg.FetchTimeout,
		logger,
	)

	handler := handlers.NewHandler(scan, store, logger)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handlers.Router(handler),
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional background scan loop keeps the cache warm.
	if cfg.ScanInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ScanInterval)
			defer ticker.Stop()

			for {
				select {
				case <-runCtx.Done():
					return
				case <-ticker.C:
					if _, err := scan.Scan(runCtx); err != nil {
						logger.Warn().Err(err).Msg("background scan failed")
					}
				}
			}
		}()
		fmt.Printf("✓ Background scan every %s\n", cfg.ScanInterval)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe()
	}()

	fmt.Printf("✓ Listening on :%s\n", cfg.Port)
	fmt.Printf("  Sports: %d  Sharp books: %v\n", len(cfg.Sports), cfg.SharpBooks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			fmt.Printf("❌ Server error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("🛑 Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("⚠️  Shutdown error: %v\n", err)
	}

	fmt.Println("✓ Shutdown complete")
}
