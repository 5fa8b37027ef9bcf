package handlers

import (
	"errors"
	"net/http"

	request "sejong_admin/internal/adapter/http/dto/request"
	"sejong_admin/internal/usecase"
	"sejong_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// BudgetHandler handles field budget administration and reporting.
//
// A settings update responds 200 even when some ledger rows failed to
// recalculate: the update itself succeeded and the report body carries
// the per-student failures for the caller to retry.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) UpdateFieldSettings(c *gin.Context) {
	var payload request.FieldSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.UpdateFieldSettings(c.Request.Context(), c.Param("field"), payload.PerLessonAmount, payload.MaxBudget)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *BudgetHandler) GetFieldBudgetStatus(c *gin.Context) {
	status, err := h.usecase.GetFieldBudgetStatus(c.Request.Context(), c.Param("field"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *BudgetHandler) GetBudgetOverview(c *gin.Context) {
	overview, err := h.usecase.GetBudgetOverview(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, overview)
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidField), errors.Is(err, usecase.ErrInvalidSettingValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
