package response

import (
	"heavyhaul_shop/internal/domain/entities"
	"time"
)

type ChecklistEntryResponse struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type RecommendationResponse struct {
	Service  string  `json:"service"`
	Parts    float64 `json:"parts"`
	Labor    float64 `json:"labor"`
	NoCost   bool    `json:"noCost"`
	Decision string  `json:"decision"`
}

// InspectionResponse is the write-path echo: the stored record after an
// update, checklist and ledger merged against the template.
type InspectionResponse struct {
	JobID           string                            `json:"job_id"`
	Checklist       map[string]ChecklistEntryResponse `json:"checklist"`
	Recommendations map[string]RecommendationResponse `json:"recommendations"`
	ServiceLines    []ServiceJobResponse              `json:"service_lines"`
	UpdatedAt       time.Time                         `json:"updated_at"`
}

func FromInspection(insp entities.Inspection) InspectionResponse {
	return InspectionResponse{
		JobID:           insp.JobID,
		Checklist:       checklistResponse(insp.Checklist),
		Recommendations: recommendationsResponse(insp.Recommendations),
		ServiceLines:    FromServiceJobs(insp.ServiceLines),
		UpdatedAt:       insp.UpdatedAt,
	}
}

// InspectionReportResponse is the read-path report with the job joins and the
// running approved-estimate total attached.
type InspectionReportResponse struct {
	Detail          JobDetailResponse                 `json:"detail"`
	Checklist       map[string]ChecklistEntryResponse `json:"checklist"`
	Recommendations map[string]RecommendationResponse `json:"recommendations"`
	ServiceLines    []ServiceJobResponse              `json:"service_lines"`
	ApprovedTotal   float64                           `json:"approved_total"`
}

func FromInspectionReport(detail entities.JobDetail, checklist entities.ChecklistMap, recs entities.RecommendationMap, lines []entities.ServiceJob, approvedTotal float64) InspectionReportResponse {
	return InspectionReportResponse{
		Detail:          FromJobDetail(detail),
		Checklist:       checklistResponse(checklist),
		Recommendations: recommendationsResponse(recs),
		ServiceLines:    FromServiceJobs(lines),
		ApprovedTotal:   approvedTotal,
	}
}

func checklistResponse(m entities.ChecklistMap) map[string]ChecklistEntryResponse {
	out := make(map[string]ChecklistEntryResponse, len(m))
	for point, entry := range m {
		out[point] = ChecklistEntryResponse{Status: string(entry.Status), Note: entry.Note}
	}
	return out
}

func recommendationsResponse(m entities.RecommendationMap) map[string]RecommendationResponse {
	out := make(map[string]RecommendationResponse, len(m))
	for point, rec := range m {
		out[point] = RecommendationResponse{
			Service:  rec.Service,
			Parts:    rec.Parts.Float64(),
			Labor:    rec.Labor.Float64(),
			NoCost:   rec.NoCost,
			Decision: string(rec.Decision),
		}
	}
	return out
}
