package entities

import "time"

// EmailSendStatus is the outcome of one debt-notice attempt.

type EmailSendStatus string

const (
	EmailSendSent     EmailSendStatus = "enviado"
	EmailSendFailed   EmailSendStatus = "fallido"
	EmailSendExcluded EmailSendStatus = "excluido"
)

// EmailSendLog records one outbound debt notice (or a failed/excluded
// attempt), keyed loosely by CUIT so the back office can look up the send
// history of a client. It never drives business logic.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cuit-index): cuit

type EmailSendLog struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	CUIT        string          `json:"cuit"`
	Insurer     string          `json:"insurer,omitempty"`
	Contract    string          `json:"contract,omitempty"`
	Recipients  []string        `json:"recipients"`
	Subject     string          `json:"subject"`
	BodySummary string          `json:"body_summary,omitempty"`
	Status      EmailSendStatus `json:"status"`
	Error       string          `json:"error,omitempty"`
	MessageID   string          `json:"message_id,omitempty"`
	LotID       string          `json:"lot_id,omitempty"`
}
