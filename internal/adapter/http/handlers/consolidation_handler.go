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
	errInvalidConsolidationPayload = pkg.NewDomainErrorSimple("INVALID_CONSOLIDATION_INPUT", "Invalid consolidation payload", http.StatusBadRequest)
)

// ConsolidationHandler handles the consolidation runs and their audit
// queries.

type ConsolidationHandler struct {
	usecase usecase.IConsolidationUseCase
}

func NewConsolidationHandler(uc usecase.IConsolidationUseCase) *ConsolidationHandler {
	return &ConsolidationHandler{usecase: uc}
}

// RunConsolidation triggers a consolidation run for the requested period.
// A duplicate submission returns 200 with the previous lot; a new run
// returns 201.
func (h *ConsolidationHandler) RunConsolidation(c *gin.Context) {
	var payload request.ConsolidationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConsolidationPayload.HTTPStatus, errInvalidConsolidationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Run(c.Request.Context(), payload.ResolvePeriod())
	if err != nil {
		appErr := mapConsolidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, response.FromRunResult(res))
}

func (h *ConsolidationHandler) ListLots(c *gin.Context) {
	lots, err := h.usecase.ListLots(c.Request.Context())
	if err != nil {
		appErr := mapConsolidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLots(lots))
}

func (h *ConsolidationHandler) GetLot(c *gin.Context) {
	lot, items, err := h.usecase.GetLot(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConsolidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLotDetail(lot, items))
}

// DownloadWorkbook streams a lot's rendered xlsx.
func (h *ConsolidationHandler) DownloadWorkbook(c *gin.Context) {
	data, name, err := h.usecase.GetWorkbook(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConsolidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func mapConsolidationError(err error) *pkg.AppError {
	var formatErr *consolidation.FormatError
	var mappingErr *consolidation.MappingError
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod), errors.Is(err, usecase.ErrInvalidLotID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &formatErr):
		return pkg.NewDomainError("INVALID_PERIOD", formatErr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &mappingErr):
		return pkg.NewDomainError("INSURER_MAPPING_INCOMPLETE", mappingErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Consolidation lot not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
