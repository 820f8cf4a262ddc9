package interfaces

import (
	"context"
	"heavyhaul_shop/internal/domain/entities"
)

// IJobRepository abstracts persistence for work orders. Vehicle and customer
// records are owned by the external store and read-only here.
//
// Repositories signal "not found" with a zero-ID entity, not an error.

type IJobRepository interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, archived bool) ([]entities.Job, error)
	UpdateStatusAndDiagnosis(ctx context.Context, id string, status entities.JobStatus, diagnosis string) (entities.Job, error)
	UpdateAssignedTech(ctx context.Context, id, techID string) (entities.Job, error)
	SetArchived(ctx context.Context, id string, archived bool) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
}

type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
}

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
