package response

import (
	"time"

	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase"
)

type NoticeSummaryResponse struct {
	LotID     string `json:"lot_id"`
	Period    string `json:"period"`
	Sheet     string `json:"sheet"`
	Processed int    `json:"processed"`
	Sent      int    `json:"sent"`
	Failed    int    `json:"failed"`
	Excluded  int    `json:"excluded"`
}

type EmailLogResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	CUIT        string    `json:"cuit"`
	Insurer     string    `json:"insurer,omitempty"`
	Contract    string    `json:"contract,omitempty"`
	Recipients  []string  `json:"recipients,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	BodySummary string    `json:"body_summary,omitempty"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	MessageID   string    `json:"message_id,omitempty"`
	LotID       string    `json:"lot_id,omitempty"`
}

func FromNoticeSummary(s usecase.NoticeSummary) NoticeSummaryResponse {
	return NoticeSummaryResponse{
		LotID:     s.LotID,
		Period:    s.Period,
		Sheet:     string(s.Sheet),
		Processed: s.Processed,
		Sent:      s.Sent,
		Failed:    s.Failed,
		Excluded:  s.Excluded,
	}
}

func FromEmailLog(e entities.EmailSendLog) EmailLogResponse {
	return EmailLogResponse{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		CUIT:        e.CUIT,
		Insurer:     e.Insurer,
		Contract:    e.Contract,
		Recipients:  e.Recipients,
		Subject:     e.Subject,
		BodySummary: e.BodySummary,
		Status:      string(e.Status),
		Error:       e.Error,
		MessageID:   e.MessageID,
		LotID:       e.LotID,
	}
}

func FromEmailLogs(entries []entities.EmailSendLog) []EmailLogResponse {
	out := make([]EmailLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromEmailLog(e))
	}
	return out
}
