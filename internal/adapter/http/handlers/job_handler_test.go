package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"heavyhaul_shop/internal/adapter/http/handlers/mocks"
	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_GetDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetDetail)

		uc.EXPECT().GetDetail(gomock.Any(), "missing").Return(entities.JobDetail{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with joins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetDetail)

		uc.EXPECT().GetDetail(gomock.Any(), "job-1").Return(entities.JobDetail{
			Job:      entities.Job{ID: "job-1", VehicleID: "v-1", Status: entities.JobStatusInShop},
			Vehicle:  entities.Vehicle{ID: "v-1", Make: "Kenworth", Model: "T680", VehicleType: "heavy_truck"},
			Customer: entities.Customer{ID: "c-1", CompanyName: "Haulage Co"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		vehicle, _ := body["vehicle"].(map[string]any)
		if vehicle["make"] != "Kenworth" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to active jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), false).
			Return([]entities.Job{
				{ID: "job-2", Status: entities.JobStatusInShop},
				{ID: "job-1", Status: entities.JobStatusReady},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "job-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("archived query flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), true).
			Return([]entities.Job{{ID: "job-9", IsArchived: true}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?archived=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["is_archived"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("bad archived value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?archived=maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("archive list denied for technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), true).
			Return(nil, usecase.ErrPermissionDenied)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs?archived=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("empty list renders as json array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any(), false).Return([]entities.Job{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})
}

func TestJobHandler_UpdateStatusAndDiagnosis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id", h.UpdateStatusAndDiagnosis)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id", h.UpdateStatusAndDiagnosis)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"tech_diagnosis":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id", h.UpdateStatusAndDiagnosis)

		uc.EXPECT().UpdateStatusAndDiagnosis(gomock.Any(), gomock.Any(), "job-1", entities.JobStatus("bogus"), "").
			Return(entities.Job{}, usecase.ErrInvalidJobStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"status":"bogus"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id", h.UpdateStatusAndDiagnosis)

		uc.EXPECT().UpdateStatusAndDiagnosis(gomock.Any(), gomock.Any(), "job-1", entities.JobStatusReady, "brakes done").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusReady, TechDiagnosis: "brakes done"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1", bytes.NewBufferString(`{"status":"ready","tech_diagnosis":"brakes done"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ready" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_AssignTech(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("assign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/assign", h.AssignTech)

		uc.EXPECT().AssignTech(gomock.Any(), gomock.Any(), "job-1", "tech-9").
			Return(entities.Job{ID: "job-1", AssignedTechID: "tech-9"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/assign", bytes.NewBufferString(`{"tech_id":"tech-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unassign with empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/assign", h.AssignTech)

		uc.EXPECT().AssignTech(gomock.Any(), gomock.Any(), "job-1", "").
			Return(entities.Job{ID: "job-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/assign", bytes.NewBufferString(`{"tech_id":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/assign", h.AssignTech)

		uc.EXPECT().AssignTech(gomock.Any(), gomock.Any(), "job-1", "tech-9").
			Return(entities.Job{}, usecase.ErrPermissionDenied)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/assign", bytes.NewBufferString(`{"tech_id":"tech-9"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestJobHandler_SetArchived(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing archived flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/archive", h.SetArchived)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/archive", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("archive success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/archive", h.SetArchived)

		uc.EXPECT().SetArchived(gomock.Any(), gomock.Any(), "job-1", true).
			Return(entities.Job{ID: "job-1", IsArchived: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/archive", bytes.NewBufferString(`{"archived":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["is_archived"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapJobError(t *testing.T) {
	if got := mapJobError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrInvalidJobStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrPermissionDenied); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapJobError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapJobError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
