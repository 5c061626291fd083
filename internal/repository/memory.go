package repository

import (
	"context"
	"sync"

	"github.com/grandrichlife727-design/edgebet-backend/pkg/models"
)

// maxScansRetained bounds memory when no database is configured.
const maxScansRetained = 50

// Memory implements PickStore in process memory. Used when DATABASE_URL is
// unset and by tests.
type Memory struct {
	mu    sync.RWMutex
	scans []models.ScanResult // newest first
}

// NewMemory builds an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// SaveScan prepends the scan, trimming old history.
func (m *Memory) SaveScan(_ context.Context, result models.ScanResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scans = append([]models.ScanResult{result}, m.scans...)
	if len(m.scans) > maxScansRetained {
		m.scans = m.scans[:maxScansRetained]
	}
	return nil
}

// LatestPicks walks scans newest first.
func (m *Memory) LatestPicks(_ context.Context, limit int) ([]models.Pick, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var picks []models.Pick
	for _, scan := range m.scans {
		for _, pick := range scan.Picks {
			if len(picks) == limit {
				return picks, nil
			}
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

// PicksBySport filters by sport key, newest first.
func (m *Memory) PicksBySport(_ context.Context, sportKey string, limit int) ([]models.Pick, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var picks []models.Pick
	for _, scan := range m.scans {
		for _, pick := range scan.Picks {
			if pick.SportKey != sportKey {
				continue
			}
			if len(picks) == limit {
				return picks, nil
			}
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
