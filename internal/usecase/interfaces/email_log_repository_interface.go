package interfaces

import (
	"context"

	"cobranzas_art/internal/domain/entities"
)

// IEmailLogRepository abstracts DynamoDB persistence for the per-CUIT email
// send log. Every attempted notice leaves a record, failures and exclusions
// included.

type IEmailLogRepository interface {
	Create(ctx context.Context, entry entities.EmailSendLog) (entities.EmailSendLog, error)
	ListByCUIT(ctx context.Context, cuit string) ([]entities.EmailSendLog, error)
}
