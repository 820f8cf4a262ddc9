package handlers

import (
	"errors"
	request "heavyhaul_shop/internal/adapter/http/dto/request"
	response "heavyhaul_shop/internal/adapter/http/dto/response"
	"heavyhaul_shop/internal/adapter/http/middleware"
	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase"
	"heavyhaul_shop/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInspectionPayload = pkg.NewDomainErrorSimple("INVALID_INSPECTION_INPUT", "Invalid inspection payload", http.StatusBadRequest)
)

// InspectionHandler handles HTTP requests for the per-job inspection record:
// the checklist, the recommendation ledger, and the customer decision flow.

type InspectionHandler struct {
	usecase usecase.IInspectionUseCase
}

func NewInspectionHandler(uc usecase.IInspectionUseCase) *InspectionHandler {
	return &InspectionHandler{usecase: uc}
}

// GetReport serves the merged inspection state: every template point present,
// stored off-template points preserved, plus the running approved total.
func (h *InspectionHandler) GetReport(c *gin.Context) {
	report, err := h.usecase.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionReport(report.Detail, report.Checklist, report.Recommendations, report.ServiceLines, report.ApprovedTotal))
}

// SaveWork persists the technician's working state: job status + diagnosis
// plus the checklist entries touched in this session.
func (h *InspectionHandler) SaveWork(c *gin.Context) {
	var payload request.SaveInspectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	checklist := make(entities.ChecklistMap, len(payload.Checklist))
	for point, entry := range payload.Checklist {
		checklist[point] = entities.ChecklistPoint{
			Status: entities.ChecklistStatus(entry.Status),
			Note:   entry.Note,
		}
	}

	report, err := h.usecase.SaveWork(
		c.Request.Context(),
		middleware.AuthFromContext(c),
		c.Param("id"),
		entities.JobStatus(payload.Status),
		payload.TechDiagnosis,
		checklist,
	)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspectionReport(report.Detail, report.Checklist, report.Recommendations, report.ServiceLines, report.ApprovedTotal))
}

// SetChecklistPoint patches one checklist entry.
func (h *InspectionHandler) SetChecklistPoint(c *gin.Context) {
	var payload request.ChecklistPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	upd := usecase.ChecklistPointUpdate{Note: payload.Note}
	if payload.Status != nil {
		status := entities.ChecklistStatus(*payload.Status)
		upd.Status = &status
	}

	insp, err := h.usecase.SetChecklistPoint(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), payload.Point, upd)
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

// UpdateRecommendation patches a recommendation's service text, estimate
// amounts, or no-cost flag.
func (h *InspectionHandler) UpdateRecommendation(c *gin.Context) {
	var payload request.RecommendationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.UpdateRecommendation(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), payload.Point, entities.RecommendationUpdate{
		Service: payload.Service,
		Parts:   payload.Parts,
		Labor:   payload.Labor,
		NoCost:  payload.NoCost,
	})
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

// Decide records the customer's approve/deny choice for a failed point. The
// report link is the credential here, so no bearer token is required.
func (h *InspectionHandler) Decide(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInspectionPayload.HTTPStatus, errInvalidInspectionPayload.ToHTTPError())
		return
	}

	insp, err := h.usecase.Decide(c.Request.Context(), c.Param("id"), payload.Point, entities.Decision(payload.Decision))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

// MigrateServiceLines backfills the service job list for records that predate
// it. One-shot; refuses records that already have service lines.
func (h *InspectionHandler) MigrateServiceLines(c *gin.Context) {
	insp, err := h.usecase.MigrateServiceLines(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapInspectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInspection(insp))
}

func mapInspectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidPoint),
		errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidJobStatus),
		errors.Is(err, usecase.ErrInvalidDecision):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownPoint):
		return pkg.NewDomainErrorSimple("POINT_NOT_FOUND", "Checklist point not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPointNotFailed):
		return pkg.NewDomainErrorSimple("POINT_NOT_FAILED", "Checklist point is not failed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToMigrate):
		return pkg.NewDomainErrorSimple("NOTHING_TO_MIGRATE", "No approved recommendations to migrate", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
