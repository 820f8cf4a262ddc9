package entities

// ChecklistStatus is the per-point outcome recorded by the technician.

type ChecklistStatus string

const (
	ChecklistStatusPending ChecklistStatus = "pending"
	ChecklistStatusPass    ChecklistStatus = "pass"
	ChecklistStatusFail    ChecklistStatus = "fail"
	ChecklistStatusNA      ChecklistStatus = "na"
)

func (s ChecklistStatus) Valid() bool {
	switch s {
	case ChecklistStatusPending, ChecklistStatusPass, ChecklistStatusFail, ChecklistStatusNA:
		return true
	}
	return false
}

// ChecklistPoint is one inspection point entry. Note semantics vary by
// section: failure reason for general points, tread/measurement text for tire
// positions.
type ChecklistPoint struct {
	Status ChecklistStatus `json:"status"`
	Note   string          `json:"note"`
}

// ChecklistMap holds the checklist for one job, keyed by point name.
type ChecklistMap map[string]ChecklistPoint

// VehicleType selects which inspection template applies.

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeHeavyTruck VehicleType = "heavy_truck"
	VehicleTypeTrailer    VehicleType = "trailer"
)

// NormalizeVehicleType falls back to car for unset or unrecognized types.
func NormalizeVehicleType(v string) VehicleType {
	switch VehicleType(v) {
	case VehicleTypeCar, VehicleTypeHeavyTruck, VehicleTypeTrailer:
		return VehicleType(v)
	}
	return VehicleTypeCar
}

// Inspection templates. Each vehicle type is a general section followed by a
// tire section matching its axle configuration. Point names are part of the
// stored data contract; renaming one orphans saved entries.

var generalChecklists = map[VehicleType][]string{
	VehicleTypeCar: {
		"Lights (Head/Tail/Brake)", "Wipers & Washers", "Horn",
		"Brake Pads/Rotors", "Fluid Levels", "Battery Health",
		"Belts & Hoses", "Suspension Components", "Exhaust System",
		"Clutch / Transmission",
		"Dashboard Warning Lights",
	},
	VehicleTypeHeavyTruck: {
		"Air Brake System (Leak Down)", "Air Lines / Gladhands",
		"Kingpin / 5th Wheel Lock", "Springs / Air Bags", "Steering Linkage",
		"Lights & Reflectors", "Fluid Levels (Oil/Coolant/DEF)",
		"Clutch / Transmission",
		"Belts & Hoses", "Exhaust / DPF", "Mudflaps",
		"City Horn / Air Horn", "Fire Extinguisher / Triangles",
	},
	VehicleTypeTrailer: {
		"Gladhands / Seals", "Landing Gear / Crank", "Floor / Decking Condition",
		"Side Panels / Roof", "Lights / Markers / ABS Light", "Air Lines / Hoses",
		"Brake Shoes / Drums", "Slack Adjusters", "Springs / Air Bags",
		"Mudflaps", "ICC Bar / Bumper",
	},
}

var tireConfigs = map[VehicleType][]string{
	VehicleTypeCar: {
		"LF (Left Front)", "RF (Right Front)", "LR (Left Rear)", "RR (Right Rear)", "Spare",
	},
	VehicleTypeHeavyTruck: {
		"LF (Steer)", "RF (Steer)",
		"1LRO", "1LRI", "1RRI", "1RRO",
		"2LRO", "2LRI", "2RRI", "2RRO",
		"3LRO", "3LRI", "3RRI", "3RRO",
	},
	VehicleTypeTrailer: {
		"1LRO", "1LRI", "1RRI", "1RRO",
		"2LRO", "2LRI", "2RRI", "2RRO",
		"3LRO", "3LRI", "3RRI", "3RRO",
	},
}

// GeneralPoints returns the general inspection section for a vehicle type.
func GeneralPoints(vt VehicleType) []string {
	if pts, ok := generalChecklists[vt]; ok {
		return pts
	}
	return generalChecklists[VehicleTypeCar]
}

// TirePoints returns the tire section for a vehicle type.
func TirePoints(vt VehicleType) []string {
	if pts, ok := tireConfigs[vt]; ok {
		return pts
	}
	return tireConfigs[VehicleTypeCar]
}

// TemplatePoints returns the full ordered template for a vehicle type.
func TemplatePoints(vt VehicleType) []string {
	general := GeneralPoints(vt)
	tires := TirePoints(vt)
	out := make([]string, 0, len(general)+len(tires))
	out = append(out, general...)
	out = append(out, tires...)
	return out
}

// MergeChecklist reconciles a stored checklist against the template for the
// given vehicle type ("self-healing merge"). Template points missing from the
// stored data are added with pending/empty defaults. Stored points that are
// not in the template (earlier template revisions) are carried over unchanged
// so nothing is silently lost.
func MergeChecklist(vt VehicleType, stored ChecklistMap) ChecklistMap {
	merged := make(ChecklistMap, len(stored)+len(generalChecklists[vt])+len(tireConfigs[vt]))
	for _, point := range TemplatePoints(vt) {
		if entry, ok := stored[point]; ok {
			merged[point] = entry
		} else {
			merged[point] = ChecklistPoint{Status: ChecklistStatusPending, Note: ""}
		}
	}
	for point, entry := range stored {
		if _, ok := merged[point]; !ok {
			merged[point] = entry
		}
	}
	return merged
}

// SetStatus updates a point's status in place. Persistence is the caller's
// concern.
func (m ChecklistMap) SetStatus(point string, status ChecklistStatus) {
	entry := m[point]
	entry.Status = status
	m[point] = entry
}

// SetNote updates a point's note in place.
func (m ChecklistMap) SetNote(point, text string) {
	entry := m[point]
	entry.Note = text
	m[point] = entry
}
