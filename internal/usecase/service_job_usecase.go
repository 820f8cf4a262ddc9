package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceJobNotFound = errors.New("service job not found")
	ErrLineNotFound       = errors.New("line not found")
)

// LaborLineInput creates a labor line. Omitted numerics default to 0 hours at
// the shop rate.
type LaborLineInput struct {
	Description string
	Hours       *float64
	Rate        *float64
}

// LaborLineUpdate edits a labor line; nil fields are left unchanged. Every
// numeric write passes through coercion so a malformed value lands as 0, not
// as a hole in the totals.
type LaborLineUpdate struct {
	Description *string
	Hours       *float64
	Rate        *float64
}

// PartLineInput creates a part line. Quantity defaults to 1, price to 0.
type PartLineInput struct {
	PartNumber string
	Name       string
	Quantity   *float64
	UnitPrice  *float64
}

type PartLineUpdate struct {
	PartNumber *string
	Name       *string
	Quantity   *float64
	UnitPrice  *float64
}

// IServiceJobUseCase exposes CRUD on the service job list embedded in a
// job's inspection record, plus the derived totals.

type IServiceJobUseCase interface {
	AddJob(ctx context.Context, auth entities.AuthorizationContext, jobID, title string) (entities.ServiceJob, error)
	RemoveJob(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string) error
	AddLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string, in LaborLineInput) (entities.ServiceJob, error)
	UpdateLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string, upd LaborLineUpdate) (entities.ServiceJob, error)
	RemoveLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string) (entities.ServiceJob, error)
	AddPartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string, in PartLineInput) (entities.ServiceJob, error)
	UpdatePartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string, upd PartLineUpdate) (entities.ServiceJob, error)
	RemovePartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string) (entities.ServiceJob, error)
}

type ServiceJobUseCase struct {
	inspRepo interfaces.IInspectionRepository
	jobRepo  interfaces.IJobRepository
}

var _ IServiceJobUseCase = (*ServiceJobUseCase)(nil)

func NewServiceJobUseCase(inspRepo interfaces.IInspectionRepository, jobRepo interfaces.IJobRepository) *ServiceJobUseCase {
	return &ServiceJobUseCase{inspRepo: inspRepo, jobRepo: jobRepo}
}

func (u *ServiceJobUseCase) load(ctx context.Context, auth entities.AuthorizationContext, jobID string) (entities.Inspection, error) {
	if !auth.CanManageFinancials() {
		return entities.Inspection{}, ErrPermissionDenied
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Inspection{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	if job.ID == "" {
		return entities.Inspection{}, ErrJobNotFound
	}

	insp, err := u.inspRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return entities.Inspection{}, err
	}
	insp.JobID = jobID
	return insp, nil
}

func (u *ServiceJobUseCase) save(ctx context.Context, insp entities.Inspection) (entities.Inspection, error) {
	insp.UpdatedAt = time.Now().UTC()
	return u.inspRepo.Put(ctx, insp)
}

func findJob(lines []entities.ServiceJob, serviceJobID string) int {
	for i, j := range lines {
		if j.ID == serviceJobID {
			return i
		}
	}
	return -1
}

func (u *ServiceJobUseCase) AddJob(ctx context.Context, auth entities.AuthorizationContext, jobID, title string) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}

	job := entities.NewServiceJob(strings.TrimSpace(title))
	insp.ServiceLines = append(insp.ServiceLines, job)
	if _, err := u.save(ctx, insp); err != nil {
		return entities.ServiceJob{}, err
	}
	return job, nil
}

// RemoveJob deletes a service job and all its lines. The UI is expected to
// confirm before calling; the core does not second-guess the caller.
func (u *ServiceJobUseCase) RemoveJob(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string) error {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return err
	}

	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return ErrServiceJobNotFound
	}
	insp.ServiceLines = append(insp.ServiceLines[:idx], insp.ServiceLines[idx+1:]...)
	_, err = u.save(ctx, insp)
	return err
}

func (u *ServiceJobUseCase) AddLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string, in LaborLineInput) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	line := entities.LaborLine{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		Rate:        entities.DefaultLaborRate,
	}
	if in.Hours != nil {
		line.Hours = entities.NewAmount(*in.Hours)
	}
	if in.Rate != nil {
		line.Rate = entities.NewAmount(*in.Rate)
	}

	insp.ServiceLines[idx].Labor = append(insp.ServiceLines[idx].Labor, line)
	saved, err := u.save(ctx, insp)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	return saved.ServiceLines[idx], nil
}

func (u *ServiceJobUseCase) UpdateLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string, upd LaborLineUpdate) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	labor := insp.ServiceLines[idx].Labor
	li := -1
	for i, l := range labor {
		if l.ID == lineID {
			li = i
			break
		}
	}
	if li < 0 {
		return entities.ServiceJob{}, ErrLineNotFound
	}

	if upd.Description != nil {
		labor[li].Description = *upd.Description
	}
	if upd.Hours != nil {
		labor[li].Hours = entities.NewAmount(*upd.Hours)
	}
	if upd.Rate != nil {
		labor[li].Rate = entities.NewAmount(*upd.Rate)
	}

	saved, err := u.save(ctx, insp)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	return saved.ServiceLines[idx], nil
}

func (u *ServiceJobUseCase) RemoveLaborLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	labor := insp.ServiceLines[idx].Labor
	for i, l := range labor {
		if l.ID == lineID {
			insp.ServiceLines[idx].Labor = append(labor[:i], labor[i+1:]...)
			saved, err := u.save(ctx, insp)
			if err != nil {
				return entities.ServiceJob{}, err
			}
			return saved.ServiceLines[idx], nil
		}
	}
	return entities.ServiceJob{}, ErrLineNotFound
}

func (u *ServiceJobUseCase) AddPartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID string, in PartLineInput) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	line := entities.PartLine{
		ID:         uuid.NewString(),
		PartNumber: strings.TrimSpace(in.PartNumber),
		Name:       strings.TrimSpace(in.Name),
		Quantity:   1,
	}
	if in.Quantity != nil {
		line.Quantity = entities.NewAmount(*in.Quantity)
	}
	if in.UnitPrice != nil {
		line.UnitPrice = entities.NewAmount(*in.UnitPrice)
	}

	insp.ServiceLines[idx].Parts = append(insp.ServiceLines[idx].Parts, line)
	saved, err := u.save(ctx, insp)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	return saved.ServiceLines[idx], nil
}

func (u *ServiceJobUseCase) UpdatePartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string, upd PartLineUpdate) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	parts := insp.ServiceLines[idx].Parts
	pi := -1
	for i, p := range parts {
		if p.ID == lineID {
			pi = i
			break
		}
	}
	if pi < 0 {
		return entities.ServiceJob{}, ErrLineNotFound
	}

	if upd.PartNumber != nil {
		parts[pi].PartNumber = *upd.PartNumber
	}
	if upd.Name != nil {
		parts[pi].Name = *upd.Name
	}
	if upd.Quantity != nil {
		parts[pi].Quantity = entities.NewAmount(*upd.Quantity)
	}
	if upd.UnitPrice != nil {
		parts[pi].UnitPrice = entities.NewAmount(*upd.UnitPrice)
	}

	saved, err := u.save(ctx, insp)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	return saved.ServiceLines[idx], nil
}

func (u *ServiceJobUseCase) RemovePartLine(ctx context.Context, auth entities.AuthorizationContext, jobID, serviceJobID, lineID string) (entities.ServiceJob, error) {
	insp, err := u.load(ctx, auth, jobID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	idx := findJob(insp.ServiceLines, serviceJobID)
	if idx < 0 {
		return entities.ServiceJob{}, ErrServiceJobNotFound
	}

	parts := insp.ServiceLines[idx].Parts
	for i, p := range parts {
		if p.ID == lineID {
			insp.ServiceLines[idx].Parts = append(parts[:i], parts[i+1:]...)
			saved, err := u.save(ctx, insp)
			if err != nil {
				return entities.ServiceJob{}, err
			}
			return saved.ServiceLines[idx], nil
		}
	}
	return entities.ServiceJob{}, ErrLineNotFound
}
