// Package snapshot persists the farm state between sessions. The state is
// stored whole as a single JSON document, so schema churn in the domain
// types never needs a data migration.
package snapshot

import (
	"context"
	"errors"

	"github.com/verdantworks/idlefarm/internal/domain"
)

// ErrNoSnapshot is returned by Load when no state has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot saved")

// Store loads and saves farm state snapshots.
type Store interface {
	Load(ctx context.Context) (*domain.FarmState, error)
	Save(ctx context.Context, state *domain.FarmState) error
	Close() error
}
