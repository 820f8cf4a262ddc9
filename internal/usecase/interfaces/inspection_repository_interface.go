package interfaces

import (
	"context"
	"heavyhaul_shop/internal/domain/entities"
)

// IInspectionRepository abstracts persistence for the per-job inspection
// record (checklist + recommendations + embedded service lines).
//
// GetByJobID returns a zero-JobID inspection when none exists yet; a job
// without an inspection is a normal state, not an error.

type IInspectionRepository interface {
	GetByJobID(ctx context.Context, jobID string) (entities.Inspection, error)
	Put(ctx context.Context, insp entities.Inspection) (entities.Inspection, error)
}
