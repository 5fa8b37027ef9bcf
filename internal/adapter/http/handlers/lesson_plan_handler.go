package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	request "sejong_admin/internal/adapter/http/dto/request"
	response "sejong_admin/internal/adapter/http/dto/response"
	"sejong_admin/internal/adapter/http/middleware"
	"sejong_admin/internal/domain/entities"
	"sejong_admin/internal/usecase"
	"sejong_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)

// LessonPlanHandler handles HTTP requests for the lesson-plan approval
// state machine. Student-facing actions (draft, submit, resubmit) carry
// the student id in the body; review actions additionally require the
// admin identity resolved by the auth middleware.

type LessonPlanHandler struct {
	usecase usecase.ILessonPlanUseCase
}

func NewLessonPlanHandler(uc usecase.ILessonPlanUseCase) *LessonPlanHandler {
	return &LessonPlanHandler{usecase: uc}
}

func (h *LessonPlanHandler) SaveDraft(c *gin.Context) {
	h.mutatePlanByRequest(c, http.StatusOK, h.usecase.SaveDraft)
}

func (h *LessonPlanHandler) SubmitPlan(c *gin.Context) {
	h.mutatePlanByRequest(c, http.StatusCreated, h.usecase.SubmitPlan)
}

func (h *LessonPlanHandler) ResubmitPlan(c *gin.Context) {
	h.mutatePlanByRequest(c, http.StatusOK, h.usecase.ResubmitPlan)
}

func (h *LessonPlanHandler) mutatePlanByRequest(
	c *gin.Context,
	okStatus int,
	mutate func(ctx context.Context, studentID string, schedule json.RawMessage, version int64) (entities.LessonPlan, error),
) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := mutate(c.Request.Context(), payload.ResolveStudentID(), payload.Schedule, payload.Version)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(okStatus, response.FromLessonPlan(plan))
}

func (h *LessonPlanHandler) ApprovePlan(c *gin.Context) {
	adminID := c.GetString(middleware.AdminIDKey)
	if adminID == "" {
		c.JSON(http.StatusUnauthorized, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing admin identity", http.StatusUnauthorized).ToHTTPError())
		return
	}

	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ApprovePlan(c.Request.Context(), payload.ResolveStudentID(), adminID, payload.Version)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalResult(result))
}

func (h *LessonPlanHandler) RejectPlan(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.RejectPlan(c.Request.Context(), payload.ResolveStudentID(), payload.Reason, payload.Version)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLessonPlan(plan))
}

func (h *LessonPlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetPlan(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLessonPlan(plan))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStudentID),
		errors.Is(err, usecase.ErrInvalidAdminID),
		errors.Is(err, usecase.ErrEmptyPlanContent),
		errors.Is(err, usecase.ErrEmptyRejectionReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Lesson plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_NOT_FOUND", "Student not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFieldSettingsNotFound):
		return pkg.NewDomainErrorSimple("FIELD_SETTINGS_NOT_FOUND", "Field budget settings not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Plan is not in a reviewable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "Plan was modified by someone else; reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
