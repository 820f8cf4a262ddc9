package entities

import "sort"

// Decision is the customer's answer to a recommended repair. It is freely
// reversible: reopening an approved or denied item back to pending is allowed
// and does not retract an already-seeded service job (see PromoteApproved).

type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionDenied   Decision = "denied"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionPending, DecisionApproved, DecisionDenied:
		return true
	}
	return false
}

// Recommendation is the advisor's proposed repair for one failed checklist
// point: a service description, a parts/labor estimate, and the customer's
// decision. A recommendation is only surfaced while its checklist point is
// failed; it is ignored otherwise.
//
// NoCost marks a complimentary repair. NoCost and nonzero amounts are
// mutually exclusive: setting NoCost forces Parts and Labor to 0.
type Recommendation struct {
	Service  string   `json:"service"`
	Parts    Amount   `json:"parts"`
	Labor    Amount   `json:"labor"`
	NoCost   bool     `json:"noCost"`
	Decision Decision `json:"decision"`
}

// RecommendationMap holds recommendations keyed by checklist point name.
type RecommendationMap map[string]Recommendation

// MergeRecommendations applies the same template reconciliation policy as
// MergeChecklist: every template point gets an entry, off-template stored
// entries are preserved.
func MergeRecommendations(vt VehicleType, stored RecommendationMap) RecommendationMap {
	merged := make(RecommendationMap, len(stored))
	for _, point := range TemplatePoints(vt) {
		if rec, ok := stored[point]; ok {
			merged[point] = normalizeRecommendation(rec)
		} else {
			merged[point] = Recommendation{Decision: DecisionPending}
		}
	}
	for point, rec := range stored {
		if _, ok := merged[point]; !ok {
			merged[point] = normalizeRecommendation(rec)
		}
	}
	return merged
}

func normalizeRecommendation(rec Recommendation) Recommendation {
	if rec.Decision == "" {
		rec.Decision = DecisionPending
	}
	rec.Parts = NewAmount(rec.Parts.Float64())
	rec.Labor = NewAmount(rec.Labor.Float64())
	return rec
}

// RecommendationUpdate carries the editable fields of a recommendation. Nil
// means "leave unchanged".
type RecommendationUpdate struct {
	Service *string
	Parts   *float64
	Labor   *float64
	NoCost  *bool
}

// Apply merges an update into the map entry for point. Switching NoCost on
// zeroes both amounts in the same update; while NoCost is set, amount edits
// are discarded.
func (m RecommendationMap) Apply(point string, upd RecommendationUpdate) {
	rec := normalizeRecommendation(m[point])

	if upd.Service != nil {
		rec.Service = *upd.Service
	}
	if upd.NoCost != nil {
		rec.NoCost = *upd.NoCost
	}
	if rec.NoCost {
		rec.Parts = 0
		rec.Labor = 0
	} else {
		if upd.Parts != nil {
			rec.Parts = NewAmount(*upd.Parts)
		}
		if upd.Labor != nil {
			rec.Labor = NewAmount(*upd.Labor)
		}
	}
	m[point] = rec
}

// SetDecision records the customer's decision and reports whether this call
// transitioned the item into approved (the reconciliation trigger).
func (m RecommendationMap) SetDecision(point string, decision Decision) (becameApproved bool) {
	rec := normalizeRecommendation(m[point])
	becameApproved = decision == DecisionApproved && rec.Decision != DecisionApproved
	rec.Decision = decision
	m[point] = rec
	return becameApproved
}

// ApprovedEstimateTotal is the running parts+labor sum over approved items,
// shown on the customer-facing report. NoCost items contribute nothing.
func (m RecommendationMap) ApprovedEstimateTotal() float64 {
	total := 0.0
	for _, rec := range m {
		if rec.Decision != DecisionApproved || rec.NoCost {
			continue
		}
		total += rec.Parts.Float64() + rec.Labor.Float64()
	}
	return total
}

// OrderedPoints returns the map's keys in template order for the given
// vehicle type, with off-template keys appended in sorted order. Used
// wherever iteration must be deterministic (legacy invoice synthesis).
func (m RecommendationMap) OrderedPoints(vt VehicleType) []string {
	points := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, point := range TemplatePoints(vt) {
		if _, ok := m[point]; ok {
			points = append(points, point)
			seen[point] = true
		}
	}
	var extra []string
	for point := range m {
		if !seen[point] {
			extra = append(extra, point)
		}
	}
	sort.Strings(extra)
	return append(points, extra...)
}
