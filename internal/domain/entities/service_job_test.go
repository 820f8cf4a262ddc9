package entities

import (
	"encoding/json"
	"math"
	"testing"
)

func TestServiceJobTotals(t *testing.T) {
	job := ServiceJob{
		Labor: []LaborLine{
			{Description: "Diagnosis", Hours: 1, Rate: 120},
			{Description: "Repair", Hours: 2.5, Rate: 100},
		},
		Parts: []PartLine{
			{Name: "Seal kit", Quantity: 2, UnitPrice: 15},
			{Name: "Hose", Quantity: 1, UnitPrice: 42.5},
		},
	}
	totals := job.Totals()
	if totals.LaborTotal != 370 {
		t.Fatalf("labor total = %v, want 370", totals.LaborTotal)
	}
	if totals.PartsTotal != 72.5 {
		t.Fatalf("parts total = %v, want 72.5", totals.PartsTotal)
	}
	if totals.Total != 442.5 {
		t.Fatalf("total = %v, want 442.5", totals.Total)
	}
}

func TestServiceJobTotals_MalformedPersistedData(t *testing.T) {
	// Legacy blobs carry string-typed and missing numerics. Totals must come
	// out as plain numbers, never NaN, with bad fields counted as 0.
	blob := `{
		"id": "sj-1",
		"title": "Brake job",
		"labor": [
			{"desc": "Labor", "hours": "2", "rate": "120"},
			{"desc": "Mystery", "hours": "a lot", "rate": 90},
			{"desc": "No numbers"}
		],
		"parts": [
			{"name": "Pads", "qty": 1, "price": "88.40"},
			{"name": "Broken", "qty": null, "price": {"nested": true}}
		]
	}`
	var job ServiceJob
	if err := json.Unmarshal([]byte(blob), &job); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	totals := job.Totals()
	if math.IsNaN(totals.LaborTotal) || math.IsNaN(totals.PartsTotal) || math.IsNaN(totals.Total) {
		t.Fatalf("totals produced NaN: %+v", totals)
	}
	if totals.LaborTotal != 240 {
		t.Fatalf("labor total = %v, want 240", totals.LaborTotal)
	}
	if totals.PartsTotal != 88.40 {
		t.Fatalf("parts total = %v, want 88.40", totals.PartsTotal)
	}
}

func TestPromoteApproved_SeedsJob(t *testing.T) {
	rec := Recommendation{Service: "Replace gladhand seal", Parts: 15, Labor: 60, Decision: DecisionApproved}

	jobs, created := PromoteApproved("Air Lines / Gladhands", rec, nil)
	if !created {
		t.Fatalf("expected job creation")
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.Title != "Replace gladhand seal" {
		t.Fatalf("unexpected title %q", job.Title)
	}
	if len(job.Labor) != 1 || job.Labor[0].Hours != 1 || job.Labor[0].Rate != 60 || job.Labor[0].Description != "Labor" {
		t.Fatalf("unexpected labor seed: %+v", job.Labor)
	}
	if len(job.Parts) != 1 || job.Parts[0].Quantity != 1 || job.Parts[0].UnitPrice != 15 {
		t.Fatalf("unexpected parts seed: %+v", job.Parts)
	}
	if job.Totals().Total != 75 {
		t.Fatalf("seeded total = %v, want 75", job.Totals().Total)
	}
}

func TestPromoteApproved_IdempotentOnTitleMatch(t *testing.T) {
	rec := Recommendation{Service: "Replace gladhand seal", Parts: 15, Labor: 60, Decision: DecisionApproved}

	jobs, _ := PromoteApproved("Air Lines / Gladhands", rec, nil)
	jobs, created := PromoteApproved("Air Lines / Gladhands", rec, jobs)
	if created {
		t.Fatalf("second promotion created a duplicate")
	}
	if len(jobs) != 1 {
		t.Fatalf("expected exactly 1 job, got %d", len(jobs))
	}
}

func TestPromoteApproved_FallbackTitle(t *testing.T) {
	rec := Recommendation{Labor: 40, Decision: DecisionApproved}
	jobs, _ := PromoteApproved("Horn", rec, nil)
	if jobs[0].Title != "Repair: Horn" {
		t.Fatalf("unexpected fallback title %q", jobs[0].Title)
	}
}

func TestPromoteApproved_SkipsZeroAmountLines(t *testing.T) {
	rec := Recommendation{Service: "Courtesy adjustment", NoCost: true, Decision: DecisionApproved}
	jobs, created := PromoteApproved("Mudflaps", rec, nil)
	if !created {
		t.Fatalf("expected job creation")
	}
	if len(jobs[0].Labor) != 0 || len(jobs[0].Parts) != 0 {
		t.Fatalf("no-cost promotion should seed no lines: %+v", jobs[0])
	}
}

func TestPromoteApproved_RenamedServiceCreatesSecondJob(t *testing.T) {
	// Title matching is exact-string only. A renamed service text on
	// re-approval creates a disconnected second job; that behavior is part
	// of the stored-data contract.
	rec := Recommendation{Service: "Replace seal", Labor: 60, Decision: DecisionApproved}
	jobs, _ := PromoteApproved("Gladhands / Seals", rec, nil)

	rec.Service = "Replace gladhand seal"
	jobs, created := PromoteApproved("Gladhands / Seals", rec, jobs)
	if !created || len(jobs) != 2 {
		t.Fatalf("expected second disconnected job, got created=%v len=%d", created, len(jobs))
	}
}
