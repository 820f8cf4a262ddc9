package entities

import "testing"

func TestNormalizeVehicleType(t *testing.T) {
	cases := []struct {
		in   string
		want VehicleType
	}{
		{"car", VehicleTypeCar},
		{"heavy_truck", VehicleTypeHeavyTruck},
		{"trailer", VehicleTypeTrailer},
		{"", VehicleTypeCar},
		{"spaceship", VehicleTypeCar},
	}
	for _, tc := range cases {
		if got := NormalizeVehicleType(tc.in); got != tc.want {
			t.Fatalf("NormalizeVehicleType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMergeChecklist_AllTemplatePointsPresent(t *testing.T) {
	for _, vt := range []VehicleType{VehicleTypeCar, VehicleTypeHeavyTruck, VehicleTypeTrailer} {
		t.Run(string(vt), func(t *testing.T) {
			merged := MergeChecklist(vt, nil)
			for _, point := range TemplatePoints(vt) {
				entry, ok := merged[point]
				if !ok {
					t.Fatalf("template point %q missing after merge", point)
				}
				if entry.Status != ChecklistStatusPending || entry.Note != "" {
					t.Fatalf("expected pending/empty default for %q, got %+v", point, entry)
				}
			}
		})
	}
}

func TestMergeChecklist_KeepsStoredEntries(t *testing.T) {
	stored := ChecklistMap{
		"Horn": {Status: ChecklistStatusFail, Note: "no sound"},
	}
	merged := MergeChecklist(VehicleTypeCar, stored)
	if got := merged["Horn"]; got.Status != ChecklistStatusFail || got.Note != "no sound" {
		t.Fatalf("stored entry lost in merge: %+v", got)
	}
}

func TestMergeChecklist_PreservesOffTemplatePoints(t *testing.T) {
	// Point names from retired template revisions must survive the merge.
	stored := ChecklistMap{
		"Carburetor Linkage": {Status: ChecklistStatusPass, Note: "legacy point"},
	}
	merged := MergeChecklist(VehicleTypeHeavyTruck, stored)
	got, ok := merged["Carburetor Linkage"]
	if !ok {
		t.Fatalf("off-template point dropped by merge")
	}
	if got.Status != ChecklistStatusPass || got.Note != "legacy point" {
		t.Fatalf("off-template point mutated: %+v", got)
	}
	if len(merged) != len(TemplatePoints(VehicleTypeHeavyTruck))+1 {
		t.Fatalf("unexpected merged size %d", len(merged))
	}
}

func TestHeavyTruckTemplateIncludesAirBrakePoint(t *testing.T) {
	merged := MergeChecklist(VehicleTypeHeavyTruck, nil)
	if _, ok := merged["Air Brake System (Leak Down)"]; !ok {
		t.Fatalf("heavy_truck template missing air brake point")
	}
	if _, ok := merged["1LRO"]; !ok {
		t.Fatalf("heavy_truck template missing tire positions")
	}
}

func TestChecklistMapSetters(t *testing.T) {
	m := MergeChecklist(VehicleTypeCar, nil)
	m.SetStatus("Horn", ChecklistStatusFail)
	m.SetNote("Horn", "intermittent")
	if got := m["Horn"]; got.Status != ChecklistStatusFail || got.Note != "intermittent" {
		t.Fatalf("setters did not update entry: %+v", got)
	}
}
