package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/devterm/internal/portfolio"
)

// ErrNotFound is returned when nothing has been imported yet. It also
// matches portfolio.ErrNotFound.
var ErrNotFound = fmt.Errorf("imported %w", portfolio.ErrNotFound)

// PortfolioRepo persists a single portfolio snapshot.
type PortfolioRepo interface {
	portfolio.Source
	Replace(ctx context.Context, snap *portfolio.Snapshot, source string) error
	ImportedAt(ctx context.Context) (time.Time, string, error)
}
