package usecase

import (
	"context"
	"strings"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"
)

// IJobUseCase exposes work order operations consumed by the rendering layer.

type IJobUseCase interface {
	GetDetail(ctx context.Context, jobID string) (entities.JobDetail, error)
	List(ctx context.Context, auth entities.AuthorizationContext, archived bool) ([]entities.Job, error)
	UpdateStatusAndDiagnosis(ctx context.Context, auth entities.AuthorizationContext, jobID string, status entities.JobStatus, diagnosis string) (entities.Job, error)
	AssignTech(ctx context.Context, auth entities.AuthorizationContext, jobID, techID string) (entities.Job, error)
	SetArchived(ctx context.Context, auth entities.AuthorizationContext, jobID string, archived bool) (entities.Job, error)
}

type JobUseCase struct {
	jobRepo      interfaces.IJobRepository
	vehicleRepo  interfaces.IVehicleRepository
	customerRepo interfaces.ICustomerRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobRepo interfaces.IJobRepository, vehicleRepo interfaces.IVehicleRepository, customerRepo interfaces.ICustomerRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, vehicleRepo: vehicleRepo, customerRepo: customerRepo}
}

func (u *JobUseCase) GetDetail(ctx context.Context, jobID string) (entities.JobDetail, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.JobDetail{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.JobDetail{}, err
	}
	if job.ID == "" {
		return entities.JobDetail{}, ErrJobNotFound
	}

	detail := entities.JobDetail{Job: job}
	if job.VehicleID != "" {
		if detail.Vehicle, err = u.vehicleRepo.GetByID(ctx, job.VehicleID); err != nil {
			return entities.JobDetail{}, err
		}
	}
	if detail.Vehicle.CustomerID != "" {
		if detail.Customer, err = u.customerRepo.GetByID(ctx, detail.Vehicle.CustomerID); err != nil {
			return entities.JobDetail{}, err
		}
	}
	return detail, nil
}

// List returns the active work orders (the dashboard view) or, for
// advisor/admin, the archived ones. Newest first.
func (u *JobUseCase) List(ctx context.Context, auth entities.AuthorizationContext, archived bool) ([]entities.Job, error) {
	if archived && !auth.CanManageJobs() {
		return nil, ErrPermissionDenied
	}

	jobs, err := u.jobRepo.List(ctx, archived)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []entities.Job{}
	}
	return jobs, nil
}

func (u *JobUseCase) UpdateStatusAndDiagnosis(ctx context.Context, auth entities.AuthorizationContext, jobID string, status entities.JobStatus, diagnosis string) (entities.Job, error) {
	if !auth.CanRecordInspection() {
		return entities.Job{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !status.Valid() {
		return entities.Job{}, ErrInvalidJobStatus
	}

	job, err := u.jobRepo.UpdateStatusAndDiagnosis(ctx, jobID, status, diagnosis)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

// AssignTech sets the assigned technician; an empty techID unassigns.
func (u *JobUseCase) AssignTech(ctx context.Context, auth entities.AuthorizationContext, jobID, techID string) (entities.Job, error) {
	if !auth.CanManageJobs() {
		return entities.Job{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.UpdateAssignedTech(ctx, jobID, strings.TrimSpace(techID))
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) SetArchived(ctx context.Context, auth entities.AuthorizationContext, jobID string, archived bool) (entities.Job, error) {
	if !auth.CanManageJobs() {
		return entities.Job{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.SetArchived(ctx, jobID, archived)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}
