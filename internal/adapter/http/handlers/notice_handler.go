package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "cobranzas_art/internal/adapter/http/dto/request"
	response "cobranzas_art/internal/adapter/http/dto/response"
	"cobranzas_art/internal/consolidation"
	"cobranzas_art/internal/usecase"
	"cobranzas_art/pkg"
)

var (
	errInvalidNoticePayload = pkg.NewDomainErrorSimple("INVALID_NOTICE_INPUT", "Invalid notice payload", http.StatusBadRequest)
	errMissingCUITParam     = pkg.NewDomainErrorSimple("INVALID_CUIT", "Missing or invalid cuit parameter", http.StatusBadRequest)
)

// NoticeHandler handles the debt-notice batches and the per-CUIT send log.

type NoticeHandler struct {
	usecase usecase.INoticeUseCase
}

func NewNoticeHandler(uc usecase.INoticeUseCase) *NoticeHandler {
	return &NoticeHandler{usecase: uc}
}

// SendNotices mails the notices of a consolidated period.
func (h *NoticeHandler) SendNotices(c *gin.Context) {
	var payload request.NoticeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNoticePayload.HTTPStatus, errInvalidNoticePayload.ToHTTPError())
		return
	}

	sheet, err := payload.ResolveSheet()
	if err != nil {
		c.JSON(errInvalidNoticePayload.HTTPStatus, errInvalidNoticePayload.ToHTTPError())
		return
	}

	sum, err := h.usecase.SendForPeriod(c.Request.Context(), payload.ResolvePeriod(), sheet)
	if err != nil {
		appErr := mapNoticeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNoticeSummary(sum))
}

// GetSendLog lists the notice history of one CUIT (?cuit=...).
func (h *NoticeHandler) GetSendLog(c *gin.Context) {
	cuit := c.Query("cuit")
	if cuit == "" {
		c.JSON(errMissingCUITParam.HTTPStatus, errMissingCUITParam.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListLogByCUIT(c.Request.Context(), cuit)
	if err != nil {
		appErr := mapNoticeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmailLogs(entries))
}

func mapNoticeError(err error) *pkg.AppError {
	var formatErr *consolidation.FormatError
	switch {
	case errors.Is(err, usecase.ErrInvalidCUIT), errors.Is(err, usecase.ErrInvalidSheetTag):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &formatErr):
		return pkg.NewDomainError("INVALID_PERIOD", formatErr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoLotForPeriod):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "No consolidation lot for the period", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
