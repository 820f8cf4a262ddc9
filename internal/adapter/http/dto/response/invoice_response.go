package response

import (
	"heavyhaul_shop/internal/domain/entities"
	"time"
)

type InvoiceLineResponse struct {
	Job    ServiceJobResponse       `json:"job"`
	Totals ServiceJobTotalsResponse `json:"totals"`
}

type InvoiceResponse struct {
	Lines         []InvoiceLineResponse `json:"lines"`
	LaborSubtotal float64               `json:"labor_subtotal"`
	PartsSubtotal float64               `json:"parts_subtotal"`
	TaxRate       float64               `json:"tax_rate"`
	Tax           float64               `json:"tax"`
	Total         float64               `json:"total"`
}

func FromInvoiceView(v entities.InvoiceView) InvoiceResponse {
	resp := InvoiceResponse{
		Lines:         make([]InvoiceLineResponse, 0, len(v.Lines)),
		LaborSubtotal: v.LaborSubtotal,
		PartsSubtotal: v.PartsSubtotal,
		TaxRate:       v.TaxRate,
		Tax:           v.Tax,
		Total:         v.Total,
	}
	for _, line := range v.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			Job: FromServiceJob(line.Job),
			Totals: ServiceJobTotalsResponse{
				LaborTotal: line.Totals.LaborTotal,
				PartsTotal: line.Totals.PartsTotal,
				Total:      line.Totals.Total,
			},
		})
	}
	return resp
}

type InvoicePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		JobID:        p.JobID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromInvoicePayments(payments []entities.InvoicePayment) []InvoicePaymentResponse {
	out := make([]InvoicePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromInvoicePayment(p))
	}
	return out
}
