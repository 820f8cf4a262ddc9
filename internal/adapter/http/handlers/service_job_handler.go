package handlers

import (
	"errors"
	request "heavyhaul_shop/internal/adapter/http/dto/request"
	response "heavyhaul_shop/internal/adapter/http/dto/response"
	"heavyhaul_shop/internal/adapter/http/middleware"
	"heavyhaul_shop/internal/usecase"
	"heavyhaul_shop/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceJobPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_JOB_INPUT", "Invalid service job payload", http.StatusBadRequest)
)

// ServiceJobHandler handles HTTP requests for the service job list on a work
// order.

type ServiceJobHandler struct {
	usecase usecase.IServiceJobUseCase
}

func NewServiceJobHandler(uc usecase.IServiceJobUseCase) *ServiceJobHandler {
	return &ServiceJobHandler{usecase: uc}
}

func (h *ServiceJobHandler) AddJob(c *gin.Context) {
	var payload request.AddServiceJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceJobPayload.HTTPStatus, errInvalidServiceJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddJob(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), payload.Title)
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) RemoveJob(c *gin.Context) {
	err := h.usecase.RemoveJob(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"))
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceJobHandler) AddLaborLine(c *gin.Context) {
	var payload request.AddLaborLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceJobPayload.HTTPStatus, errInvalidServiceJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddLaborLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), usecase.LaborLineInput{
		Description: payload.Description,
		Hours:       payload.Hours,
		Rate:        payload.Rate,
	})
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) UpdateLaborLine(c *gin.Context) {
	var payload request.UpdateLaborLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceJobPayload.HTTPStatus, errInvalidServiceJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateLaborLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), c.Param("lineID"), usecase.LaborLineUpdate{
		Description: payload.Description,
		Hours:       payload.Hours,
		Rate:        payload.Rate,
	})
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) RemoveLaborLine(c *gin.Context) {
	job, err := h.usecase.RemoveLaborLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), c.Param("lineID"))
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) AddPartLine(c *gin.Context) {
	var payload request.AddPartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceJobPayload.HTTPStatus, errInvalidServiceJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddPartLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), usecase.PartLineInput{
		PartNumber: payload.PartNumber,
		Name:       payload.Name,
		Quantity:   payload.Quantity,
		UnitPrice:  payload.UnitPrice,
	})
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) UpdatePartLine(c *gin.Context) {
	var payload request.UpdatePartLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceJobPayload.HTTPStatus, errInvalidServiceJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdatePartLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), c.Param("lineID"), usecase.PartLineUpdate{
		PartNumber: payload.PartNumber,
		Name:       payload.Name,
		Quantity:   payload.Quantity,
		UnitPrice:  payload.UnitPrice,
	})
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) RemovePartLine(c *gin.Context) {
	job, err := h.usecase.RemovePartLine(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("sjid"), c.Param("lineID"))
	if err != nil {
		appErr := mapServiceJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func mapServiceJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceJobNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_JOB_NOT_FOUND", "Service job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Line not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
