package entities

import "github.com/google/uuid"

// DefaultTaxRate is the parts tax applied at every observed call site.
// Labor is never taxed; that is shop policy, not an accident.
const DefaultTaxRate = 0.07

// InvoiceLine pairs a service job with its computed totals for rendering.
type InvoiceLine struct {
	Job    ServiceJob       `json:"job"`
	Totals ServiceJobTotals `json:"totals"`
}

// InvoiceView is the flat taxed invoice derived at compile time. It is never
// stored; it is recomputed from the inspection record on every request.
type InvoiceView struct {
	Lines         []InvoiceLine `json:"lines"`
	LaborSubtotal float64       `json:"labor_subtotal"`
	PartsSubtotal float64       `json:"parts_subtotal"`
	TaxRate       float64       `json:"tax_rate"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
}

// CompileInvoice builds the invoice from the service job list when one
// exists, falling back to synthesizing jobs from approved recommendations for
// legacy inspection records that predate service lines. vt fixes the
// fallback's iteration order to the checklist template.
func CompileInvoice(jobs []ServiceJob, recs RecommendationMap, vt VehicleType, taxRate float64) InvoiceView {
	if len(jobs) == 0 {
		jobs = SynthesizeServiceJobs(recs, vt)
	}

	view := InvoiceView{Lines: make([]InvoiceLine, 0, len(jobs)), TaxRate: taxRate}
	for _, j := range jobs {
		totals := j.Totals()
		view.Lines = append(view.Lines, InvoiceLine{Job: j, Totals: totals})
		view.LaborSubtotal += totals.LaborTotal
		view.PartsSubtotal += totals.PartsTotal
	}

	// Only parts are taxable.
	view.Tax = view.PartsSubtotal * taxRate
	view.Total = view.LaborSubtotal + view.PartsSubtotal + view.Tax
	return view
}

// SynthesizeServiceJobs converts approved recommendations into one pseudo
// service job each, mirroring how legacy invoices were rendered: a single
// labor line and a single part line, each only when the amount is nonzero.
// NoCost items carry zero amounts and therefore produce an empty job.
func SynthesizeServiceJobs(recs RecommendationMap, vt VehicleType) []ServiceJob {
	var jobs []ServiceJob
	for _, point := range recs.OrderedPoints(vt) {
		rec := recs[point]
		if rec.Decision != DecisionApproved {
			continue
		}

		title := rec.Service
		if title == "" {
			title = FallbackServiceTitle(point)
		}
		job := ServiceJob{Title: title, Labor: []LaborLine{}, Parts: []PartLine{}}

		labor := rec.Labor.Float64()
		parts := rec.Parts.Float64()
		if rec.NoCost {
			labor, parts = 0, 0
		}
		if labor > 0 {
			job.Labor = append(job.Labor, LaborLine{Description: "Service Labor", Hours: 1, Rate: Amount(labor)})
		}
		if parts > 0 {
			job.Parts = append(job.Parts, PartLine{Name: "Service Parts", PartNumber: "N/A", Quantity: 1, UnitPrice: Amount(parts)})
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// FlatLineCategory tags entries of the retired flat invoicing scheme, which
// coexisted with service lines for a while. Only part lines were taxed there
// as well.

type FlatLineCategory string

const (
	FlatLinePart  FlatLineCategory = "part"
	FlatLineLabor FlatLineCategory = "labor"
	FlatLineFee   FlatLineCategory = "fee"
)

// FlatInvoiceLine is one entry of that retired scheme.
type FlatInvoiceLine struct {
	Description string           `json:"description"`
	Category    FlatLineCategory `json:"category"`
	Amount      Amount           `json:"amount"`
}

// MigrateFlatLines converts a flat tagged line list into canonical service
// jobs, one job per line. Fees carry no tax in either scheme, so they map to
// labor lines. One-time migration helper; the flat shape is not served at
// runtime.
func MigrateFlatLines(lines []FlatInvoiceLine) []ServiceJob {
	jobs := make([]ServiceJob, 0, len(lines))
	for _, line := range lines {
		job := NewServiceJob(line.Description)
		switch line.Category {
		case FlatLinePart:
			job.Parts = append(job.Parts, PartLine{
				ID:        uuid.NewString(),
				Name:      line.Description,
				Quantity:  1,
				UnitPrice: line.Amount,
			})
		default:
			job.Labor = append(job.Labor, LaborLine{
				ID:          uuid.NewString(),
				Description: line.Description,
				Hours:       1,
				Rate:        line.Amount,
			})
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// MigrateApprovedRecommendations converts a raw recommendation map (the
// oldest stored shape, no service lines at all) into canonical service jobs.
// Same synthesis as the invoice fallback, but with generated IDs since the
// result is persisted.
func MigrateApprovedRecommendations(recs RecommendationMap, vt VehicleType) []ServiceJob {
	jobs := SynthesizeServiceJobs(recs, vt)
	for i := range jobs {
		jobs[i].ID = uuid.NewString()
		for li := range jobs[i].Labor {
			jobs[i].Labor[li].ID = uuid.NewString()
		}
		for pi := range jobs[i].Parts {
			jobs[i].Parts[pi].ID = uuid.NewString()
		}
	}
	return jobs
}
