// Package injuries pulls team injury reports from an optional external feed
// and matches them to feed team names, which rarely agree verbatim with the
// odds feed's naming.
package injuries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Report is one player's injury status for a team.
type Report struct {
	Player   string `json:"player"`
	Status   string `json:"status"`
	Position string `json:"position"`
}

// Severity buckets derived from free-text status.
type Severity string

const (
	SeverityOut      Severity = "out"
	SeverityDoubtful Severity = "doubtful"
	SeverityMinor    Severity = "minor"
)

// Classify maps a free-text injury status to a severity bucket.
func Classify(status string) Severity {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "out"):
		return SeverityOut
	case strings.Contains(s, "doubtful"):
		return SeverityDoubtful
	default:
		return SeverityMinor
	}
}

// Index is an immutable snapshot of injury reports keyed by team name,
// built once per scan.
type Index struct {
	reports map[string][]Report
	names   []string // sorted; map iteration order must not leak into matches
}

// NewIndex wraps a team→reports mapping.
func NewIndex(reports map[string][]Report) *Index {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Index{reports: reports, names: names}
}

// ReportsFor fuzzy-matches a team name against the index, checking entries
// in sorted name order so an ambiguous query always resolves the same way.
// Returns nil when nothing matches.
func (idx *Index) ReportsFor(team string) []Report {
	if idx == nil || len(idx.reports) == 0 {
		return nil
	}

	want := normalize(team)

	// Exact match first.
	for _, name := range idx.names {
		if normalize(name) == want {
			return idx.reports[name]
		}
	}

	// Substring either direction ("Lakers" vs "Los Angeles Lakers").
	for _, name := range idx.names {
		have := normalize(name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return idx.reports[name]
		}
	}

	// Last word, usually the nickname.
	wantLast := lastWord(want)
	if wantLast == "" {
		return nil
	}
	for _, name := range idx.names {
		if lastWord(normalize(name)) == wantLast {
			return idx.reports[name]
		}
	}

	return nil
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func lastWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Client fetches injury reports over HTTP. The feed is a plain JSON mapping
// from team name to reports.
type Client struct {
	url        string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient builds a feed client. url may be empty, in which case Fetch
// returns a nil index and the injury agent falls back to line-shape
// heuristics only.
func NewClient(url string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "injury_feed").Logger(),
	}
}

// Fetch retrieves the current report index. Errors degrade to a nil index:
// injuries are an enrichment, never a reason to fail a scan.
func (c *Client) Fetch(ctx context.Context) *Index {
	if c == nil || c.url == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.logger.Warn().Err(err).Msg("building injury feed request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("injury feed unavailable")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("injury feed returned non-200")
		return nil
	}

	var reports map[string][]Report
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		c.logger.Warn().Err(err).Msg("decoding injury feed")
		return nil
	}

	c.logger.Debug().Int("teams", len(reports)).Msg("injury reports loaded")
	return NewIndex(reports)
}

// String implements fmt.Stringer for log context.
func (r Report) String() string {
	return fmt.Sprintf("%s (%s, %s)", r.Player, r.Position, r.Status)
}
