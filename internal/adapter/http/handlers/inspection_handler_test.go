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

func TestInspectionHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id/inspection", h.GetReport)

		uc.EXPECT().GetReport(gomock.Any(), "missing").Return(usecase.InspectionReport{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing/inspection", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id/inspection", h.GetReport)

		uc.EXPECT().GetReport(gomock.Any(), "job-1").Return(usecase.InspectionReport{
			Detail: entities.JobDetail{Job: entities.Job{ID: "job-1", Status: entities.JobStatusInShop}},
			Checklist: entities.ChecklistMap{
				"Brakes": {Status: entities.ChecklistStatusFail, Note: "worn pads"},
			},
			Recommendations: entities.RecommendationMap{
				"Brakes": {Service: "Replace pads", Parts: 40, Labor: 60, Decision: entities.DecisionApproved},
			},
			ApprovedTotal: 100,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/inspection", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["approved_total"] != 100.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_SaveWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id/inspection", h.SaveWork)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/inspection", bytes.NewBufferString("{"))
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
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id/inspection", h.SaveWork)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/inspection", bytes.NewBufferString(`{"tech_diagnosis":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id/inspection", h.SaveWork)

		uc.EXPECT().SaveWork(gomock.Any(), gomock.Any(), "job-1", entities.JobStatusInShop, "", gomock.Any()).
			Return(usecase.InspectionReport{}, usecase.ErrPermissionDenied)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/inspection", bytes.NewBufferString(`{"status":"in_shop"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success forwards checklist entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PUT("/v1/jobs/:id/inspection", h.SaveWork)

		uc.EXPECT().SaveWork(gomock.Any(), gomock.Any(), "job-1", entities.JobStatusInShop, "leaking gladhand", gomock.Any()).
			DoAndReturn(func(_, _ any, _ any, _ entities.JobStatus, _ string, checklist entities.ChecklistMap) (usecase.InspectionReport, error) {
				entry, ok := checklist["Brakes"]
				if !ok {
					t.Fatalf("expected Brakes entry forwarded, got %+v", checklist)
				}
				if entry.Status != entities.ChecklistStatusFail || entry.Note != "worn" {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return usecase.InspectionReport{Detail: entities.JobDetail{Job: entities.Job{ID: "job-1"}}}, nil
			})

		payload := `{"status":"in_shop","tech_diagnosis":"leaking gladhand","checklist":{"Brakes":{"status":"fail","note":"worn"}}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/job-1/inspection", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_SetChecklistPoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/inspection/checklist", h.SetChecklistPoint)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/inspection/checklist", bytes.NewBufferString(`{"status":"pass"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("point name with slash survives body transport", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/inspection/checklist", h.SetChecklistPoint)

		uc.EXPECT().SetChecklistPoint(gomock.Any(), gomock.Any(), "job-1", "Air Lines / Gladhands", gomock.Any()).
			DoAndReturn(func(_, _ any, _, _ string, upd usecase.ChecklistPointUpdate) (entities.Inspection, error) {
				if upd.Status == nil || *upd.Status != entities.ChecklistStatusFail {
					t.Fatalf("expected fail status, got %+v", upd)
				}
				return entities.Inspection{JobID: "job-1"}, nil
			})

		payload := `{"point":"Air Lines / Gladhands","status":"fail"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/inspection/checklist", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown point", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/inspection/checklist", h.SetChecklistPoint)

		uc.EXPECT().SetChecklistPoint(gomock.Any(), gomock.Any(), "job-1", "Flux Capacitor", gomock.Any()).
			Return(entities.Inspection{}, usecase.ErrUnknownPoint)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/inspection/checklist", bytes.NewBufferString(`{"point":"Flux Capacitor","status":"pass"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInspectionHandler_Decide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("point not failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/inspection/decision", h.Decide)

		uc.EXPECT().Decide(gomock.Any(), "job-1", "Brakes", entities.DecisionApproved).
			Return(entities.Inspection{}, usecase.ErrPointNotFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/inspection/decision", bytes.NewBufferString(`{"point":"Brakes","decision":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/inspection/decision", h.Decide)

		uc.EXPECT().Decide(gomock.Any(), "job-1", "Brakes", entities.DecisionApproved).
			Return(entities.Inspection{JobID: "job-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/inspection/decision", bytes.NewBufferString(`{"point":"Brakes","decision":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["job_id"] != "job-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInspectionHandler_MigrateServiceLines(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing to migrate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/inspection/migrate-service-lines", h.MigrateServiceLines)

		uc.EXPECT().MigrateServiceLines(gomock.Any(), gomock.Any(), "job-1").
			Return(entities.Inspection{}, usecase.ErrNothingToMigrate)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/inspection/migrate-service-lines", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInspectionUseCase(ctrl)
		h := NewInspectionHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/inspection/migrate-service-lines", h.MigrateServiceLines)

		uc.EXPECT().MigrateServiceLines(gomock.Any(), gomock.Any(), "job-1").
			Return(entities.Inspection{JobID: "job-1", ServiceLines: []entities.ServiceJob{{ID: "sj-1", Title: "Replace pads"}}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/inspection/migrate-service-lines", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapInspectionError(t *testing.T) {
	if got := mapInspectionError(usecase.ErrInvalidJobID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInspectionError(usecase.ErrInvalidDecision); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInspectionError(usecase.ErrPermissionDenied); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapInspectionError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInspectionError(usecase.ErrUnknownPoint); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInspectionError(usecase.ErrPointNotFailed); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInspectionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
