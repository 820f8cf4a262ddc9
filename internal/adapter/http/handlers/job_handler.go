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
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for work orders.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// List serves the work order board: active jobs by default, archived ones
// with ?archived=true (advisor/admin).
func (h *JobHandler) List(c *gin.Context) {
	archived, err := strconv.ParseBool(c.DefaultQuery("archived", "false"))
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	jobs, err := h.usecase.List(c.Request.Context(), middleware.AuthFromContext(c), archived)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// GetDetail serves the job with its vehicle and customer joins resolved.
func (h *JobHandler) GetDetail(c *gin.Context) {
	detail, err := h.usecase.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobDetail(detail))
}

func (h *JobHandler) UpdateStatusAndDiagnosis(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStatusAndDiagnosis(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), entities.JobStatus(payload.Status), payload.TechDiagnosis)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignTech(c *gin.Context) {
	var payload request.AssignTechRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AssignTech(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), payload.TechID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) SetArchived(c *gin.Context) {
	var payload request.ArchiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Archived == nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetArchived(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), *payload.Archived)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
