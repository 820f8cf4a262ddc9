package entities

import "github.com/google/uuid"

// DefaultLaborRate is the shop's hourly rate applied to new labor lines.
const DefaultLaborRate = 120

// LaborLine is one labor entry on a service job. JSON keys match the stored
// inspection blob written by earlier revisions of the system.
type LaborLine struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"desc"`
	Hours       Amount `json:"hours"`
	Rate        Amount `json:"rate"`
}

func (l LaborLine) Total() float64 {
	return l.Hours.Float64() * l.Rate.Float64()
}

// PartLine is one part entry on a service job.
type PartLine struct {
	ID         string `json:"id,omitempty"`
	PartNumber string `json:"partNumber"`
	Name       string `json:"name"`
	Quantity   Amount `json:"qty"`
	UnitPrice  Amount `json:"price"`
}

func (p PartLine) Total() float64 {
	return p.Quantity.Float64() * p.UnitPrice.Float64()
}

// ServiceJob is one independently-editable repair line on the work order,
// grouping labor and part lines under a title.
type ServiceJob struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Labor []LaborLine `json:"labor"`
	Parts []PartLine  `json:"parts"`
}

// ServiceJobTotals is the derived per-job summary.
type ServiceJobTotals struct {
	LaborTotal float64 `json:"labor_total"`
	PartsTotal float64 `json:"parts_total"`
	Total      float64 `json:"total"`
}

// Totals sums the job's lines. Missing or malformed numeric fields have
// already been coerced to 0 at the load boundary, so the result is never NaN.
func (j ServiceJob) Totals() ServiceJobTotals {
	labor := 0.0
	for _, l := range j.Labor {
		labor += l.Total()
	}
	parts := 0.0
	for _, p := range j.Parts {
		parts += p.Total()
	}
	return ServiceJobTotals{LaborTotal: labor, PartsTotal: parts, Total: labor + parts}
}

// NewServiceJob creates an empty job line.
func NewServiceJob(title string) ServiceJob {
	return ServiceJob{
		ID:    uuid.NewString(),
		Title: title,
		Labor: []LaborLine{},
		Parts: []PartLine{},
	}
}

// FallbackServiceTitle labels a promoted recommendation whose service text
// was left empty.
func FallbackServiceTitle(point string) string {
	return "Repair: " + point
}

// PromoteApproved seeds a service job from a just-approved recommendation.
//
// If a job with the target title already exists nothing happens, which makes
// repeated approval clicks and reload races idempotent. Matching is by exact
// title string only: renaming the recommendation's service text after
// approval and re-approving will create a second, disconnected job. Both are
// long-standing observed behaviors of the stored data and are kept as-is.
//
// This is a one-shot seed, not a live binding: later edits to the
// recommendation's estimate do not propagate to the service job and vice
// versa, and denying the recommendation afterwards does not retract the job.
// TODO: replace with an explicit ServiceJob.sourceRecommendationId link so
// estimate edits and denials can propagate.
func PromoteApproved(point string, rec Recommendation, jobs []ServiceJob) ([]ServiceJob, bool) {
	title := rec.Service
	if title == "" {
		title = FallbackServiceTitle(point)
	}

	for _, j := range jobs {
		if j.Title == title {
			return jobs, false
		}
	}

	job := NewServiceJob(title)
	if rec.Labor.Float64() > 0 {
		job.Labor = append(job.Labor, LaborLine{
			ID:          uuid.NewString(),
			Description: "Labor",
			Hours:       1,
			Rate:        rec.Labor,
		})
	}
	if rec.Parts.Float64() > 0 {
		job.Parts = append(job.Parts, PartLine{
			ID:         uuid.NewString(),
			Name:       "Parts",
			PartNumber: "N/A",
			Quantity:   1,
			UnitPrice:  rec.Parts,
		})
	}
	return append(jobs, job), true
}
