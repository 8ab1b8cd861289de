// Package storage defines the persistence boundary for run history.
package storage

import (
	"context"

	"hunter/pkg/domain"
)

// RunStore persists a finished run: its summary plus the interesting groups.
type RunStore interface {
	// StoreRun writes the summary and one row per checked domain of every
	// group, atomically.
	StoreRun(ctx context.Context, summary domain.Summary, groups []domain.Group) error
	// Close releases the underlying connections.
	Close() error
}
