package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// Postgres implements PickStore on database/sql.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a connection pool against the given DSN.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Postgres{db: db}, nil
}

// Ping checks connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close releases the pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// SaveScan inserts every pick of a scan in one transaction.
func (p *Postgres) SaveScan(ctx context.Context, result models.ScanResult) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO picks (
			id, scan_id, sport_key, sport, game_id, matchup, commence_time,
			bet, market, odds, score, confidence, edge, stake_pct, breakdown,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for _, pick := range result.Picks {
		breakdown, err := json.Marshal(pick.Breakdown)
		if err != nil {
			return fmt.Errorf("serializing breakdown: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query,
			pick.ID,
			pick.ScanID,
			pick.SportKey,
			pick.Sport,
			pick.GameID,
			pick.Matchup,
			pick.CommenceTime,
			pick.Bet,
			pick.Market,
			pick.Odds,
			pick.Score,
			pick.Confidence,
			pick.Edge,
			pick.StakePct,
			breakdown,
			result.GeneratedAt,
		); err != nil {
			return fmt.Errorf("insert pick: %w", err)
		}
	}

	return tx.Commit()
}

// LatestPicks returns the most recent picks, newest scan first, highest
// score first within a scan.
func (p *Postgres) LatestPicks(ctx context.Context, limit int) ([]models.Pick, error) {
	query := `
		SELECT id, scan_id, sport_key, sport, game_id, matchup, commence_time,
		       bet, market, odds, score, confidence, edge, stake_pct, breakdown
		FROM picks
		ORDER BY created_at DESC, score DESC
		LIMIT $1
	`
	return p.queryPicks(ctx, query, limit)
}

// PicksBySport filters pick history by sport key.
func (p *Postgres) PicksBySport(ctx context.Context, sportKey string, limit int) ([]models.Pick, error) {
	query := `
		SELECT id, scan_id, sport_key, sport, game_id, matchup, commence_time,
		       bet, market, odds, score, confidence, edge, stake_pct, breakdown
		FROM picks
		WHERE sport_key = $1
		ORDER BY created_at DESC, score DESC
		LIMIT $2
	`
	return p.queryPicks(ctx, query, sportKey, limit)
}

func (p *Postgres) queryPicks(ctx context.Context, query string, args ...interface{}) ([]models.Pick, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query picks: %w", err)
	}
	defer rows.Close()

	var picks []models.Pick
	for rows.Next() {
		var pick models.Pick
		var breakdown []byte

		if err := rows.Scan(
			&pick.ID,
			&pick.ScanID,
			&pick.SportKey,
			&pick.Sport,
			&pick.GameID,
			&pick.Matchup,
			&pick.CommenceTime,
			&pick.Bet,
			&pick.Market,
			&pick.Odds,
			&pick.Score,
			&pick.Confidence,
			&pick.Edge,
			&pick.StakePct,
			&breakdown,
		); err != nil {
			return nil, fmt.Errorf("scan pick row: %w", err)
		}

		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &pick.Breakdown); err != nil {
				return nil, fmt.Errorf("parse breakdown: %w", err)
			}
		}

		picks = append(picks, pick)
	}

	return picks, rows.Err()
}
