package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentJobID        = errors.New("invalid job id for payment")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrNothingToInvoice           = errors.New("invoice total is zero")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IInvoiceUseCase compiles the taxed invoice view for a job and captures
// payments against it.

type IInvoiceUseCase interface {
	Compile(ctx context.Context, auth entities.AuthorizationContext, jobID string) (entities.InvoiceView, error)
	CreateAndApprovePayment(ctx context.Context, auth entities.AuthorizationContext, jobID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetPayment(ctx context.Context, auth entities.AuthorizationContext, jobID, paymentID string) (entities.InvoicePayment, error)
	ListPayments(ctx context.Context, auth entities.AuthorizationContext, jobID string) ([]entities.InvoicePayment, error)
}

type InvoiceUseCase struct {
	inspRepo    interfaces.IInspectionRepository
	jobRepo     interfaces.IJobRepository
	vehicleRepo interfaces.IVehicleRepository
	paymentRepo interfaces.IInvoicePaymentRepository
	gateway     interfaces.IPaymentGateway
	taxRate     float64
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	inspRepo interfaces.IInspectionRepository,
	jobRepo interfaces.IJobRepository,
	vehicleRepo interfaces.IVehicleRepository,
	paymentRepo interfaces.IInvoicePaymentRepository,
	gateway interfaces.IPaymentGateway,
	taxRate float64,
) *InvoiceUseCase {
	if taxRate <= 0 {
		taxRate = entities.DefaultTaxRate
	}
	return &InvoiceUseCase{
		inspRepo:    inspRepo,
		jobRepo:     jobRepo,
		vehicleRepo: vehicleRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		taxRate:     taxRate,
	}
}

// Compile builds the invoice view: service lines when present, otherwise the
// legacy synthesis from approved recommendations.
func (u *InvoiceUseCase) Compile(ctx context.Context, auth entities.AuthorizationContext, jobID string) (entities.InvoiceView, error) {
	if !auth.CanManageFinancials() {
		return entities.InvoiceView{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.InvoiceView{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.InvoiceView{}, err
	}
	if job.ID == "" {
		return entities.InvoiceView{}, ErrJobNotFound
	}

	vt := entities.VehicleTypeCar
	if job.VehicleID != "" {
		vehicle, err := u.vehicleRepo.GetByID(ctx, job.VehicleID)
		if err != nil {
			return entities.InvoiceView{}, err
		}
		vt = entities.NormalizeVehicleType(vehicle.VehicleType)
	}

	insp, err := u.inspRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.InvoiceView{}, err
	}
	recs := entities.MergeRecommendations(vt, insp.Recommendations)

	return entities.CompileInvoice(insp.ServiceLines, recs, vt, u.taxRate), nil
}

// CreateAndApprovePayment charges the job's current invoice total through the
// payment gateway and records the approved payment. On success the job is
// moved to invoiced; that status write is independent of the payment write
// and is only logged if it fails.
func (u *InvoiceUseCase) CreateAndApprovePayment(ctx context.Context, auth entities.AuthorizationContext, jobID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	if !auth.CanManageFinancials() {
		return entities.InvoicePayment{}, ErrPermissionDenied
	}
	mockMode := isPaymentGatewayMockEnabled()
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentJobID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[invoice][usecase] invalid payload job_id=%s", jobID)
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.InvoicePayment{}, errors.New("payment gateway not configured")
	}

	view, err := u.Compile(ctx, auth, jobID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if view.Total <= 0 {
		return entities.InvoicePayment{}, ErrNothingToInvoice
	}
	log.Printf("[invoice][usecase] capture start job_id=%s total=%.2f", jobID, view.Total)

	// The invoice compiled from the inspection record is the source of truth
	// for the charge amount; external_reference keys reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = jobID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice for job %s", jobID)
		}
		reqMap["transaction_amount"] = view.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage

	if mockMode {
		log.Printf("[invoice][usecase] mock mode enabled; skipping payment gateway job_id=%s", jobID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mock := map[string]any{
			"id":                 providerPaymentID,
			"status":             providerStatus,
			"status_detail":      "accredited",
			"external_reference": jobID,
			"transaction_amount": view.Total,
			"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
		}
		providerResp, _ = json.Marshal(mock)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[invoice][usecase] payment gateway failed job_id=%s err=%v", jobID, err)
			if isGatewayUnauthorized(err) {
				return entities.InvoicePayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.InvoicePayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.InvoicePayment{}, err
		}
	}
	log.Printf("[invoice][usecase] gateway success job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[invoice][usecase] provider response unmarshal failed job_id=%s err=%v", jobID, err)
	}

	p := entities.InvoicePayment{
		ID:           providerPaymentID,
		JobID:        jobID,
		Amount:       view.Total,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	if _, err := u.jobRepo.UpdateStatus(ctx, jobID, entities.JobStatusInvoiced); err != nil {
		// Payment is recorded; the status write has no rollback to offer.
		log.Printf("[invoice][usecase] job status update failed job_id=%s payment_id=%s err=%v", jobID, created.ID, err)
	}
	log.Printf("[invoice][usecase] capture success job_id=%s payment_id=%s", jobID, created.ID)
	return created, nil
}

// GetPayment returns one recorded payment. The payment must belong to the
// job in the path; a mismatch reads as not found.
func (u *InvoiceUseCase) GetPayment(ctx context.Context, auth entities.AuthorizationContext, jobID, paymentID string) (entities.InvoicePayment, error) {
	if !auth.CanManageFinancials() {
		return entities.InvoicePayment{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentJobID
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.InvoicePayment{}, ErrPaymentNotFound
	}

	p, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" || p.JobID != jobID {
		return entities.InvoicePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, auth entities.AuthorizationContext, jobID string) ([]entities.InvoicePayment, error) {
	if !auth.CanManageFinancials() {
		return nil, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidPaymentJobID
	}
	return u.paymentRepo.ListByJobID(ctx, jobID)
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
