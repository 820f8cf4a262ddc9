package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"
)

var (
	ErrInvalidJobID     = errors.New("invalid job id")
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidPoint     = errors.New("invalid checklist point")
	ErrUnknownPoint     = errors.New("unknown checklist point")
	ErrInvalidStatus    = errors.New("invalid checklist status")
	ErrInvalidJobStatus = errors.New("invalid job status")
	ErrInvalidDecision  = errors.New("invalid decision")
	ErrPointNotFailed   = errors.New("checklist point is not failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNothingToMigrate = errors.New("nothing to migrate")
)

// InspectionReport is the merged inspection state served to the rendering
// layer: every template point present, stored off-template points preserved.
type InspectionReport struct {
	Detail          entities.JobDetail          `json:"detail"`
	Checklist       entities.ChecklistMap       `json:"checklist"`
	Recommendations entities.RecommendationMap  `json:"recommendations"`
	ServiceLines    []entities.ServiceJob       `json:"service_lines"`
	ApprovedTotal   float64                     `json:"approved_total"`
}

// ChecklistPointUpdate carries a partial checklist entry write. Nil fields
// are left unchanged.
type ChecklistPointUpdate struct {
	Status *entities.ChecklistStatus
	Note   *string
}

// IInspectionUseCase exposes the checklist store, the recommendation ledger
// and the reconciliation bridge for one job's inspection record.

type IInspectionUseCase interface {
	GetReport(ctx context.Context, jobID string) (InspectionReport, error)
	SaveWork(ctx context.Context, auth entities.AuthorizationContext, jobID string, status entities.JobStatus, diagnosis string, checklist entities.ChecklistMap) (InspectionReport, error)
	SetChecklistPoint(ctx context.Context, auth entities.AuthorizationContext, jobID, point string, upd ChecklistPointUpdate) (entities.Inspection, error)
	UpdateRecommendation(ctx context.Context, auth entities.AuthorizationContext, jobID, point string, upd entities.RecommendationUpdate) (entities.Inspection, error)
	Decide(ctx context.Context, jobID, point string, decision entities.Decision) (entities.Inspection, error)
	MigrateServiceLines(ctx context.Context, auth entities.AuthorizationContext, jobID string) (entities.Inspection, error)
}

type InspectionUseCase struct {
	inspRepo     interfaces.IInspectionRepository
	jobRepo      interfaces.IJobRepository
	vehicleRepo  interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IInspectionUseCase = (*InspectionUseCase)(nil)

func NewInspectionUseCase(
	inspRepo interfaces.IInspectionRepository,
	jobRepo interfaces.IJobRepository,
	vehicleRepo interfaces.IVehicleRepository,
	customerRepo interfaces.ICustomerRepository,
) *InspectionUseCase {
	return &InspectionUseCase{inspRepo: inspRepo, jobRepo: jobRepo, vehicleRepo: vehicleRepo, customerRepo: customerRepo}
}

// loadMerged fetches the job, its vehicle, and the stored inspection, then
// reconciles checklist and recommendations against the vehicle's template.
// A missing inspection record yields a fully-defaulted one.
func (u *InspectionUseCase) loadMerged(ctx context.Context, jobID string) (entities.Inspection, entities.JobDetail, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Inspection{}, entities.JobDetail{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, entities.JobDetail{}, err
	}
	if job.ID == "" {
		return entities.Inspection{}, entities.JobDetail{}, ErrJobNotFound
	}

	detail := entities.JobDetail{Job: job}
	if job.VehicleID != "" && u.vehicleRepo != nil {
		if detail.Vehicle, err = u.vehicleRepo.GetByID(ctx, job.VehicleID); err != nil {
			return entities.Inspection{}, entities.JobDetail{}, err
		}
	}
	if detail.Vehicle.CustomerID != "" && u.customerRepo != nil {
		if detail.Customer, err = u.customerRepo.GetByID(ctx, detail.Vehicle.CustomerID); err != nil {
			return entities.Inspection{}, entities.JobDetail{}, err
		}
	}

	insp, err := u.inspRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, entities.JobDetail{}, err
	}

	vt := detail.VehicleType()
	insp.JobID = jobID
	insp.Checklist = entities.MergeChecklist(vt, insp.Checklist)
	insp.Recommendations = entities.MergeRecommendations(vt, insp.Recommendations)
	return insp, detail, nil
}

func (u *InspectionUseCase) GetReport(ctx context.Context, jobID string) (InspectionReport, error) {
	insp, detail, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return InspectionReport{}, err
	}
	return InspectionReport{
		Detail:          detail,
		Checklist:       insp.Checklist,
		Recommendations: insp.Recommendations,
		ServiceLines:    insp.ServiceLines,
		ApprovedTotal:   insp.Recommendations.ApprovedEstimateTotal(),
	}, nil
}

// SaveWork persists the technician's working state: job status + diagnosis
// first, then the inspection blob. The two writes are independent; a failure
// of the second leaves the first in place with no rollback, matching how the
// save action has always behaved.
func (u *InspectionUseCase) SaveWork(ctx context.Context, auth entities.AuthorizationContext, jobID string, status entities.JobStatus, diagnosis string, checklist entities.ChecklistMap) (InspectionReport, error) {
	if !auth.CanRecordInspection() {
		return InspectionReport{}, ErrPermissionDenied
	}
	if !status.Valid() {
		return InspectionReport{}, ErrInvalidJobStatus
	}

	insp, detail, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return InspectionReport{}, err
	}

	job, err := u.jobRepo.UpdateStatusAndDiagnosis(ctx, detail.Job.ID, status, diagnosis)
	if err != nil {
		return InspectionReport{}, err
	}
	detail.Job = job

	for point, entry := range checklist {
		if !entry.Status.Valid() {
			entry.Status = entities.ChecklistStatusPending
		}
		insp.Checklist[point] = entry
	}
	insp.UpdatedAt = time.Now().UTC()
	if insp, err = u.inspRepo.Put(ctx, insp); err != nil {
		return InspectionReport{}, err
	}

	return InspectionReport{
		Detail:          detail,
		Checklist:       insp.Checklist,
		Recommendations: insp.Recommendations,
		ServiceLines:    insp.ServiceLines,
		ApprovedTotal:   insp.Recommendations.ApprovedEstimateTotal(),
	}, nil
}

func (u *InspectionUseCase) SetChecklistPoint(ctx context.Context, auth entities.AuthorizationContext, jobID, point string, upd ChecklistPointUpdate) (entities.Inspection, error) {
	if !auth.CanRecordInspection() {
		return entities.Inspection{}, ErrPermissionDenied
	}
	point = strings.TrimSpace(point)
	if point == "" {
		return entities.Inspection{}, ErrInvalidPoint
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Inspection{}, ErrInvalidStatus
	}

	insp, _, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if _, ok := insp.Checklist[point]; !ok {
		return entities.Inspection{}, ErrUnknownPoint
	}

	if upd.Status != nil {
		insp.Checklist.SetStatus(point, *upd.Status)
	}
	if upd.Note != nil {
		insp.Checklist.SetNote(point, *upd.Note)
	}
	insp.UpdatedAt = time.Now().UTC()
	return u.inspRepo.Put(ctx, insp)
}

func (u *InspectionUseCase) UpdateRecommendation(ctx context.Context, auth entities.AuthorizationContext, jobID, point string, upd entities.RecommendationUpdate) (entities.Inspection, error) {
	if !auth.CanManageFinancials() {
		return entities.Inspection{}, ErrPermissionDenied
	}
	point = strings.TrimSpace(point)
	if point == "" {
		return entities.Inspection{}, ErrInvalidPoint
	}

	insp, _, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if _, ok := insp.Recommendations[point]; !ok {
		return entities.Inspection{}, ErrUnknownPoint
	}

	insp.Recommendations.Apply(point, upd)
	insp.UpdatedAt = time.Now().UTC()
	return u.inspRepo.Put(ctx, insp)
}

// Decide records the customer's decision for a failed point. No staff role is
// required: the public report link is the credential, as it always has been.
//
// A transition into approved runs the reconciliation bridge, seeding a
// service job unless one with the same title already exists. Repeat approvals
// are therefore idempotent.
func (u *InspectionUseCase) Decide(ctx context.Context, jobID, point string, decision entities.Decision) (entities.Inspection, error) {
	point = strings.TrimSpace(point)
	if point == "" {
		return entities.Inspection{}, ErrInvalidPoint
	}
	if !decision.Valid() {
		return entities.Inspection{}, ErrInvalidDecision
	}

	insp, _, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	entry, ok := insp.Checklist[point]
	if !ok {
		return entities.Inspection{}, ErrUnknownPoint
	}
	// Recommendations are only actionable while the point is failed.
	if entry.Status != entities.ChecklistStatusFail {
		return entities.Inspection{}, ErrPointNotFailed
	}

	if insp.Recommendations.SetDecision(point, decision) {
		insp.ServiceLines, _ = entities.PromoteApproved(point, insp.Recommendations[point], insp.ServiceLines)
	}
	insp.UpdatedAt = time.Now().UTC()
	return u.inspRepo.Put(ctx, insp)
}

// MigrateServiceLines backfills the canonical service job list for legacy
// inspection records that only carry approved recommendations. It refuses to
// touch records that already have service lines.
func (u *InspectionUseCase) MigrateServiceLines(ctx context.Context, auth entities.AuthorizationContext, jobID string) (entities.Inspection, error) {
	if !auth.CanManageFinancials() {
		return entities.Inspection{}, ErrPermissionDenied
	}

	insp, detail, err := u.loadMerged(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if len(insp.ServiceLines) > 0 {
		return entities.Inspection{}, ErrNothingToMigrate
	}

	jobs := entities.MigrateApprovedRecommendations(insp.Recommendations, detail.VehicleType())
	if len(jobs) == 0 {
		return entities.Inspection{}, ErrNothingToMigrate
	}

	insp.ServiceLines = jobs
	insp.UpdatedAt = time.Now().UTC()
	return u.inspRepo.Put(ctx, insp)
}
