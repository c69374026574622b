package request

import (
	"errors"
	"strings"

	"cobranzas_art/internal/domain/entities"
)

var ErrUnknownSheet = errors.New("unknown sheet")

// ConsolidationRequest triggers one consolidation run for a period.
// Period accepts the spellings the back office actually types: MM-YYYY,
// MM/YYYY or YYYY-MM.
type ConsolidationRequest struct {
	Period string `json:"period" binding:"required"`
}

func (r ConsolidationRequest) ResolvePeriod() string {
	return strings.TrimSpace(r.Period)
}

// NoticeRequest triggers the debt-notice batch of a period. Sheet selects
// which persisted sheet feeds the batch; empty means the consolidated base.
type NoticeRequest struct {
	Period string `json:"period" binding:"required"`
	Sheet  string `json:"sheet"`
}

func (r NoticeRequest) ResolvePeriod() string {
	return strings.TrimSpace(r.Period)
}

func (r NoticeRequest) ResolveSheet() (entities.SheetTag, error) {
	switch strings.ToLower(strings.TrimSpace(r.Sheet)) {
	case "":
		return entities.SheetConsolidado, nil
	case string(entities.SheetConsolidado):
		return entities.SheetConsolidado, nil
	case string(entities.SheetProductor):
		return entities.SheetProductor, nil
	default:
		return "", ErrUnknownSheet
	}
}
