package interfaces

import (
	"context"

	"cobranzas_art/internal/domain/entities"
)

// IConsolidationLotRepository abstracts DynamoDB persistence for consolidation
// lots and their items.
//
// The back office must be able to:
//   - record a lot per accepted run, with its input fingerprint
//   - bulk-load the persisted sheets' rows as lot items
//   - find a previous lot by input fingerprint (duplicate-run guard)
//   - remove a lot header whose item batch never committed, so the
//     fingerprint does not block a retry
//   - list lots and read a lot's items back, for audit and notices

type IConsolidationLotRepository interface {
	CreateLot(ctx context.Context, lot entities.ConsolidationLot) (entities.ConsolidationLot, error)
	DeleteLot(ctx context.Context, id string) error
	GetLotByID(ctx context.Context, id string) (entities.ConsolidationLot, error)
	GetLotByInputHash(ctx context.Context, hash string) (entities.ConsolidationLot, error)
	ListLots(ctx context.Context) ([]entities.ConsolidationLot, error)
	ListLotsByPeriod(ctx context.Context, period string) ([]entities.ConsolidationLot, error)

	BulkAddItems(ctx context.Context, items []entities.ConsolidatedItem) (int, error)
	ListItems(ctx context.Context, lotID string) ([]entities.ConsolidatedItem, error)
	ListItemsBySheet(ctx context.Context, lotID string, sheet entities.SheetTag) ([]entities.ConsolidatedItem, error)
}
