package entities

import "testing"

func TestMergeRecommendations_Defaults(t *testing.T) {
	merged := MergeRecommendations(VehicleTypeCar, nil)
	for _, point := range TemplatePoints(VehicleTypeCar) {
		rec, ok := merged[point]
		if !ok {
			t.Fatalf("template point %q missing", point)
		}
		if rec.Decision != DecisionPending || rec.Service != "" || rec.Parts != 0 || rec.Labor != 0 || rec.NoCost {
			t.Fatalf("unexpected default for %q: %+v", point, rec)
		}
	}
}

func TestMergeRecommendations_PreservesOffTemplate(t *testing.T) {
	stored := RecommendationMap{
		"Old Point": {Service: "Old repair", Labor: 50, Decision: DecisionApproved},
	}
	merged := MergeRecommendations(VehicleTypeTrailer, stored)
	if rec := merged["Old Point"]; rec.Service != "Old repair" || rec.Labor != 50 {
		t.Fatalf("off-template recommendation lost: %+v", rec)
	}
}

func TestApply_NoCostZeroesAmounts(t *testing.T) {
	m := RecommendationMap{}
	parts, labor := 15.0, 60.0
	m.Apply("Horn", RecommendationUpdate{Parts: &parts, Labor: &labor})
	if rec := m["Horn"]; rec.Parts != 15 || rec.Labor != 60 {
		t.Fatalf("amounts not applied: %+v", rec)
	}

	noCost := true
	m.Apply("Horn", RecommendationUpdate{NoCost: &noCost})
	rec := m["Horn"]
	if !rec.NoCost || rec.Parts != 0 || rec.Labor != 0 {
		t.Fatalf("noCost did not zero amounts: %+v", rec)
	}

	// Amount edits are discarded while noCost is set.
	m.Apply("Horn", RecommendationUpdate{Labor: &labor})
	if rec := m["Horn"]; rec.Labor != 0 {
		t.Fatalf("labor edit applied despite noCost: %+v", rec)
	}
}

func TestApply_CoercesNegativeAmounts(t *testing.T) {
	m := RecommendationMap{}
	bad := -30.0
	m.Apply("Horn", RecommendationUpdate{Parts: &bad})
	if rec := m["Horn"]; rec.Parts != 0 {
		t.Fatalf("negative amount not coerced: %+v", rec)
	}
}

func TestSetDecision_Transitions(t *testing.T) {
	m := RecommendationMap{"Horn": {Service: "Fix horn", Labor: 40, Decision: DecisionPending}}

	if !m.SetDecision("Horn", DecisionApproved) {
		t.Fatalf("expected approval transition to be reported")
	}
	if m.SetDecision("Horn", DecisionApproved) {
		t.Fatalf("repeated approval should not re-trigger")
	}

	// Decisions are freely reversible.
	if m.SetDecision("Horn", DecisionPending) {
		t.Fatalf("reopening is not an approval transition")
	}
	if m["Horn"].Decision != DecisionPending {
		t.Fatalf("reopen did not stick")
	}
	if !m.SetDecision("Horn", DecisionApproved) {
		t.Fatalf("re-approval after reopen should trigger again")
	}
}

func TestApprovedEstimateTotal(t *testing.T) {
	m := RecommendationMap{
		"A": {Parts: 15, Labor: 60, Decision: DecisionApproved},
		"B": {Parts: 100, Labor: 50, Decision: DecisionDenied},
		"C": {Parts: 10, Labor: 10, Decision: DecisionPending},
		"D": {NoCost: true, Decision: DecisionApproved},
	}
	if got := m.ApprovedEstimateTotal(); got != 75 {
		t.Fatalf("approved total = %v, want 75", got)
	}
}

func TestOrderedPoints_TemplateOrderThenSortedExtras(t *testing.T) {
	m := RecommendationMap{
		"Zeta Legacy":  {},
		"Alpha Legacy": {},
		"Horn":         {},
		"Wipers & Washers": {},
	}
	points := m.OrderedPoints(VehicleTypeCar)
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	// Template order first: Wipers & Washers precedes Horn in the car
	// template; legacy extras follow alphabetically.
	if points[0] != "Wipers & Washers" || points[1] != "Horn" {
		t.Fatalf("template points out of order: %v", points[:2])
	}
	if points[2] != "Alpha Legacy" || points[3] != "Zeta Legacy" {
		t.Fatalf("extras not sorted: %v", points[2:])
	}
}
