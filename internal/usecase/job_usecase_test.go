package usecase

import (
	"context"
	"errors"
	"testing"

	"heavyhaul_shop/internal/domain/entities"
	mock_interfaces "heavyhaul_shop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newJobUseCaseWithMocks(t *testing.T) (*JobUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIVehicleRepository, *mock_interfaces.MockICustomerRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	vehicleRepo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	customerRepo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewJobUseCase(jobRepo, vehicleRepo, customerRepo)
	return uc, jobRepo, vehicleRepo, customerRepo, ctrl
}

func TestJobUseCase_GetDetail(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc, _, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		_, err := uc.GetDetail(context.Background(), " ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetDetail(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("attaches vehicle and customer", func(t *testing.T) {
		uc, jobRepo, vehicleRepo, customerRepo, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", VehicleID: "v-1"}, nil)
		vehicleRepo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{ID: "v-1", CustomerID: "c-1", VehicleType: "trailer", UnitNumber: "T-42"}, nil)
		customerRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", CompanyName: "Haulage Co"}, nil)

		detail, err := uc.GetDetail(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Vehicle.UnitNumber != "T-42" || detail.Customer.CompanyName != "Haulage Co" {
			t.Fatalf("detail incomplete: %+v", detail)
		}
		if detail.VehicleType() != entities.VehicleTypeTrailer {
			t.Fatalf("vehicle type = %q, want trailer", detail.VehicleType())
		}
	})

	t.Run("job without vehicle", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)

		detail, err := uc.GetDetail(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.VehicleType() != entities.VehicleTypeCar {
			t.Fatalf("expected car default, got %q", detail.VehicleType())
		}
	})
}

func TestJobUseCase_UpdateStatusAndDiagnosis(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		_, err := uc.UpdateStatusAndDiagnosis(context.Background(), techAuth, "job-1", "melted", "")
		if !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})

	t.Run("technician may update", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().UpdateStatusAndDiagnosis(gomock.Any(), "job-1", entities.JobStatusReady, "done").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusReady}, nil)

		job, err := uc.UpdateStatusAndDiagnosis(context.Background(), techAuth, "job-1", entities.JobStatusReady, "done")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusReady {
			t.Fatalf("unexpected job: %+v", job)
		}
	})
}

func TestJobUseCase_AssignTech(t *testing.T) {
	t.Run("technician denied", func(t *testing.T) {
		uc, _, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		_, err := uc.AssignTech(context.Background(), techAuth, "job-1", "u-9")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("empty tech id unassigns", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().UpdateAssignedTech(gomock.Any(), "job-1", "").
			Return(entities.Job{ID: "job-1"}, nil)

		if _, err := uc.AssignTech(context.Background(), advisorAuth, "job-1", "   "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_List(t *testing.T) {
	t.Run("active list open to all staff", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().List(gomock.Any(), false).
			Return([]entities.Job{{ID: "job-2"}, {ID: "job-1"}}, nil)

		jobs, err := uc.List(context.Background(), techAuth, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 2 || jobs[0].ID != "job-2" {
			t.Fatalf("unexpected jobs: %+v", jobs)
		}
	})

	t.Run("archive list requires job management", func(t *testing.T) {
		uc, _, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		_, err := uc.List(context.Background(), techAuth, true)
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("advisor reads the archive", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().List(gomock.Any(), true).
			Return([]entities.Job{{ID: "job-9", IsArchived: true}}, nil)

		jobs, err := uc.List(context.Background(), advisorAuth, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || !jobs[0].IsArchived {
			t.Fatalf("unexpected jobs: %+v", jobs)
		}
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().List(gomock.Any(), false).Return(nil, nil)

		jobs, err := uc.List(context.Background(), advisorAuth, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if jobs == nil || len(jobs) != 0 {
			t.Fatalf("expected empty slice, got %#v", jobs)
		}
	})
}

func TestJobUseCase_SetArchived(t *testing.T) {
	t.Run("archives", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().SetArchived(gomock.Any(), "job-1", true).
			Return(entities.Job{ID: "job-1", IsArchived: true}, nil)

		job, err := uc.SetArchived(context.Background(), advisorAuth, "job-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !job.IsArchived {
			t.Fatalf("expected archived job, got %+v", job)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, jobRepo, _, _, ctrl := newJobUseCaseWithMocks(t)
		defer ctrl.Finish()
		jobRepo.EXPECT().SetArchived(gomock.Any(), "job-1", false).Return(entities.Job{}, nil)

		_, err := uc.SetArchived(context.Background(), advisorAuth, "job-1", false)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}
