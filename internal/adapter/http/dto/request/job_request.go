package request

// UpdateJobRequest patches the work order's status and diagnosis.
type UpdateJobRequest struct {
	Status        string `json:"status" binding:"required"`
	TechDiagnosis string `json:"tech_diagnosis"`
}

// AssignTechRequest sets or clears the assigned technician.
type AssignTechRequest struct {
	TechID string `json:"tech_id"`
}

// ArchiveRequest toggles the job's archive flag.
type ArchiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}
