package interfaces

import (
	"context"

	"cobranzas_art/internal/consolidation"
)

// IConsolidationRunner abstracts the in-memory consolidation pipeline so the
// usecase (and its tests) do not depend on real xlsx files on disk.

type IConsolidationRunner interface {
	Run(ctx context.Context, period string) (consolidation.RunOutput, error)
}
