package entities

import (
	"encoding/json"
	"time"
)

// Inspection is the per-job inspection record: the checklist, the
// recommendation ledger, and the service job list.
//
// The service jobs live inside the recommendations document under a
// "service_lines" key rather than as their own entity. That co-location is a
// historical artifact of the system this data came from (adding a column was
// avoided by stuffing the array into the existing JSON blob) and is kept so
// stored records round-trip unchanged.
type Inspection struct {
	JobID           string            `json:"job_id"`
	Checklist       ChecklistMap      `json:"checklist"`
	Recommendations RecommendationMap `json:"recommendations"`
	ServiceLines    []ServiceJob      `json:"service_lines"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// RecommendationsDocument is the stored shape of the recommendations blob:
// a map of point name -> recommendation with one magic "service_lines" key
// holding the service job array.

const serviceLinesKey = "service_lines"

type RecommendationsDocument struct {
	Points       RecommendationMap
	ServiceLines []ServiceJob
}

func (d RecommendationsDocument) MarshalJSON() ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(d.Points)+1)
	for point, rec := range d.Points {
		b, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		raw[point] = b
	}
	if d.ServiceLines != nil {
		b, err := json.Marshal(d.ServiceLines)
		if err != nil {
			return nil, err
		}
		raw[serviceLinesKey] = b
	}
	return json.Marshal(raw)
}

func (d *RecommendationsDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Arbitrary shapes have been observed at this boundary. A blob that
		// is not an object is treated as an empty ledger, not an error.
		d.Points = RecommendationMap{}
		d.ServiceLines = nil
		return nil
	}

	d.Points = make(RecommendationMap, len(raw))
	d.ServiceLines = nil
	for key, val := range raw {
		if key == serviceLinesKey {
			var lines []ServiceJob
			if err := json.Unmarshal(val, &lines); err == nil {
				d.ServiceLines = lines
			}
			continue
		}
		var rec Recommendation
		if err := json.Unmarshal(val, &rec); err != nil {
			continue
		}
		d.Points[key] = rec
	}
	return nil
}
