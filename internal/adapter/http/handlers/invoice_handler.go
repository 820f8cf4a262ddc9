package handlers

import (
	"encoding/json"
	"errors"
	response "heavyhaul_shop/internal/adapter/http/dto/response"
	"heavyhaul_shop/internal/adapter/http/middleware"
	"heavyhaul_shop/internal/usecase"
	"heavyhaul_shop/pkg"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for the compiled invoice view and
// payment capture.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GetInvoice serves the taxed invoice view compiled from the job's current
// inspection record.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	view, err := h.usecase.Compile(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoiceView(view))
}

// CreatePayment charges the current invoice total through the payment
// provider and records the approved payment.
func (h *InvoiceHandler) CreatePayment(c *gin.Context) {
	jobID := c.Param("id")
	log.Printf("[invoice][handler] payment start job_id=%s", jobID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[invoice][handler] payload invalid in mock mode; fallback to empty payload job_id=%s err=%v", jobID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[invoice][handler] invalid payload job_id=%s err=%v", jobID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprovePayment(c.Request.Context(), middleware.AuthFromContext(c), jobID, mpPayload)
	if err != nil {
		log.Printf("[invoice][handler] payment failed job_id=%s err=%v", jobID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] payment success job_id=%s payment_id=%s status=%s", jobID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// GetPayment returns one recorded payment for the job.
func (h *InvoiceHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"), c.Param("paymentID"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoicePayment(p))
}

// ListPayments returns every recorded payment for the job, newest last.
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), middleware.AuthFromContext(c), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

// readMPPayload accepts either a raw provider payload or an envelope with an
// mp_payload key, matching what the rendering layer sends.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidPaymentJobID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToInvoice):
		return pkg.NewDomainErrorSimple("NOTHING_TO_INVOICE", "Invoice total is zero", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
