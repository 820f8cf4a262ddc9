package response

import "heavyhaul_shop/internal/domain/entities"

// Line item JSON keys match the stored inspection blob so the rendering layer
// can edit what it reads.

type LaborLineResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"desc"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Total       float64 `json:"total"`
}

type PartLineResponse struct {
	ID         string  `json:"id"`
	PartNumber string  `json:"partNumber"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"qty"`
	UnitPrice  float64 `json:"price"`
	Total      float64 `json:"total"`
}

type ServiceJobTotalsResponse struct {
	LaborTotal float64 `json:"labor_total"`
	PartsTotal float64 `json:"parts_total"`
	Total      float64 `json:"total"`
}

type ServiceJobResponse struct {
	ID     string                   `json:"id"`
	Title  string                   `json:"title"`
	Labor  []LaborLineResponse      `json:"labor"`
	Parts  []PartLineResponse       `json:"parts"`
	Totals ServiceJobTotalsResponse `json:"totals"`
}

func FromServiceJob(j entities.ServiceJob) ServiceJobResponse {
	resp := ServiceJobResponse{
		ID:    j.ID,
		Title: j.Title,
		Labor: make([]LaborLineResponse, 0, len(j.Labor)),
		Parts: make([]PartLineResponse, 0, len(j.Parts)),
	}
	for _, l := range j.Labor {
		resp.Labor = append(resp.Labor, LaborLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Hours:       l.Hours.Float64(),
			Rate:        l.Rate.Float64(),
			Total:       l.Total(),
		})
	}
	for _, p := range j.Parts {
		resp.Parts = append(resp.Parts, PartLineResponse{
			ID:         p.ID,
			PartNumber: p.PartNumber,
			Name:       p.Name,
			Quantity:   p.Quantity.Float64(),
			UnitPrice:  p.UnitPrice.Float64(),
			Total:      p.Total(),
		})
	}
	totals := j.Totals()
	resp.Totals = ServiceJobTotalsResponse{
		LaborTotal: totals.LaborTotal,
		PartsTotal: totals.PartsTotal,
		Total:      totals.Total,
	}
	return resp
}

func FromServiceJobs(jobs []entities.ServiceJob) []ServiceJobResponse {
	out := make([]ServiceJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromServiceJob(j))
	}
	return out
}
