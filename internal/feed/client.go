// Package feed wraps the upstream odds API. Each per-sport fetch is rate
// limited, bounded by a timeout, and guarded by a circuit breaker so one
// misbehaving upstream never starves a scan.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// Client fetches raw games per sport from The Odds API v4.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     zerolog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL        string
	APIKey         string
	Regions        string
	Markets        string
	Timeout        time.Duration
	RequestsPerSec float64
}

// NewClient builds a feed client.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "odds-feed",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		regions:    opts.Regions,
		markets:    opts.Markets,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
		breaker:    breaker,
		logger:     logger.With().Str("component", "feed").Logger(),
	}
}

// FetchOdds retrieves upcoming games with bookmaker quotes for one sport.
// Transport failures, timeouts and non-success statuses come back as errors;
// the scanner treats them as zero games for the sport.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]models.RawGame, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, sportKey)
	query := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {c.regions},
		"markets":    {c.markets},
		"oddsFormat": {"american"},
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.get(ctx, endpoint+"?"+query.Encode())
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("sport", sportKey).Msg("odds fetch failed")
		return nil, err
	}

	games := result.([]models.RawGame)
	c.logger.Debug().Str("sport", sportKey).Int("games", len(games)).Msg("odds fetched")
	return games, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]models.RawGame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("odds API returned status %d", resp.StatusCode)
	}

	var games []models.RawGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decoding odds response: %w", err)
	}

	return games, nil
}
