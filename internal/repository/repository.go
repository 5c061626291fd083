// Package repository stores pick history behind an explicit interface so
// the scoring pipeline never touches storage lifetime directly.
package repository

import (
	"context"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// PickStore persists scan output and serves pick history.
type PickStore interface {
	SaveScan(ctx context.Context, result models.ScanResult) error
	LatestPicks(ctx context.Context, limit int) ([]models.Pick, error)
	PicksBySport(ctx context.Context, sportKey string, limit int) ([]models.Pick, error)
	Close() error
}
