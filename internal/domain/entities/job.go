package entities

import "time"

// JobStatus is the work order lifecycle.

type JobStatus string

const (
	JobStatusDraft           JobStatus = "draft"
	JobStatusScheduled       JobStatus = "scheduled"
	JobStatusInShop          JobStatus = "in_shop"
	JobStatusWaitingApproval JobStatus = "waiting_approval"
	JobStatusWaitingParts    JobStatus = "waiting_parts"
	JobStatusReady           JobStatus = "ready"
	JobStatusInvoiced        JobStatus = "invoiced"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusScheduled, JobStatusInShop, JobStatusWaitingApproval,
		JobStatusWaitingParts, JobStatusReady, JobStatusInvoiced:
		return true
	}
	return false
}

// Job is the work order. Vehicle and customer data are owned by the external
// record store and joined in read-only (see JobDetail).
type Job struct {
	ID                string    `json:"id"`
	VehicleID         string    `json:"vehicle_id"`
	Status            JobStatus `json:"status"`
	CustomerComplaint string    `json:"customer_complaint"`
	TechDiagnosis     string    `json:"tech_diagnosis"`
	AssignedTechID    string    `json:"assigned_tech_id"`
	IsArchived        bool      `json:"is_archived"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Vehicle is a read-only join through the job.
type Vehicle struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Year        int    `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	VIN         string `json:"vin"`
	UnitNumber  string `json:"unit_number"`
	VehicleType string `json:"vehicle_type"`
}

// Customer is a read-only join through the vehicle.
type Customer struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BillingAddress string `json:"billing_address"`
	CompanyName    string `json:"company_name"`
}

// JobDetail is the job with its joins resolved, as served to the rendering
// layer.
type JobDetail struct {
	Job      Job      `json:"job"`
	Vehicle  Vehicle  `json:"vehicle"`
	Customer Customer `json:"customer"`
}

// VehicleType resolves the template type for the job's vehicle.
func (d JobDetail) VehicleType() VehicleType {
	return NormalizeVehicleType(d.Vehicle.VehicleType)
}
