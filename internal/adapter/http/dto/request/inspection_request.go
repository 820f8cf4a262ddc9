package request

// ChecklistEntryRequest is one checklist entry inside a full inspection save.
type ChecklistEntryRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// SaveInspectionRequest is the technician's "save work" payload: the job
// fields and the checklist entries touched in this session.
type SaveInspectionRequest struct {
	Status        string                           `json:"status" binding:"required"`
	TechDiagnosis string                           `json:"tech_diagnosis"`
	Checklist     map[string]ChecklistEntryRequest `json:"checklist"`
}

// ChecklistPointRequest patches a single checklist entry. The point travels
// in the body because template point names contain slashes. Omitted fields
// are left unchanged.
type ChecklistPointRequest struct {
	Point  string  `json:"point" binding:"required"`
	Status *string `json:"status"`
	Note   *string `json:"note"`
}

// RecommendationRequest patches one recommendation. Omitted fields are left
// unchanged; amounts arrive as loose JSON and are coerced downstream.
type RecommendationRequest struct {
	Point   string   `json:"point" binding:"required"`
	Service *string  `json:"service"`
	Parts   *float64 `json:"parts"`
	Labor   *float64 `json:"labor"`
	NoCost  *bool    `json:"noCost"`
}

// DecisionRequest records the customer's approve/deny choice.
type DecisionRequest struct {
	Point    string `json:"point" binding:"required"`
	Decision string `json:"decision" binding:"required"`
}
