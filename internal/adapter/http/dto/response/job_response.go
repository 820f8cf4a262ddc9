package response

import (
	"heavyhaul_shop/internal/domain/entities"
	"time"
)

type JobResponse struct {
	ID                string    `json:"id"`
	VehicleID         string    `json:"vehicle_id"`
	Status            string    `json:"status"`
	CustomerComplaint string    `json:"customer_complaint"`
	TechDiagnosis     string    `json:"tech_diagnosis"`
	AssignedTechID    string    `json:"assigned_tech_id"`
	IsArchived        bool      `json:"is_archived"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                j.ID,
		VehicleID:         j.VehicleID,
		Status:            string(j.Status),
		CustomerComplaint: j.CustomerComplaint,
		TechDiagnosis:     j.TechDiagnosis,
		AssignedTechID:    j.AssignedTechID,
		IsArchived:        j.IsArchived,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

type VehicleResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Year        int    `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	VIN         string `json:"vin"`
	UnitNumber  string `json:"unit_number"`
	VehicleType string `json:"vehicle_type"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BillingAddress string `json:"billing_address"`
	CompanyName    string `json:"company_name"`
}

type JobDetailResponse struct {
	Job      JobResponse      `json:"job"`
	Vehicle  VehicleResponse  `json:"vehicle"`
	Customer CustomerResponse `json:"customer"`
}

func FromJobDetail(d entities.JobDetail) JobDetailResponse {
	return JobDetailResponse{
		Job: FromJob(d.Job),
		Vehicle: VehicleResponse{
			ID:          d.Vehicle.ID,
			CustomerID:  d.Vehicle.CustomerID,
			Year:        d.Vehicle.Year,
			Make:        d.Vehicle.Make,
			Model:       d.Vehicle.Model,
			VIN:         d.Vehicle.VIN,
			UnitNumber:  d.Vehicle.UnitNumber,
			VehicleType: string(entities.NormalizeVehicleType(d.Vehicle.VehicleType)),
		},
		Customer: CustomerResponse{
			ID:             d.Customer.ID,
			FirstName:      d.Customer.FirstName,
			LastName:       d.Customer.LastName,
			Phone:          d.Customer.Phone,
			Email:          d.Customer.Email,
			BillingAddress: d.Customer.BillingAddress,
			CompanyName:    d.Customer.CompanyName,
		},
	}
}
