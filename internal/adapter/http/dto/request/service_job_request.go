package request

type AddServiceJobRequest struct {
	Title string `json:"title"`
}

type AddLaborLineRequest struct {
	Description string   `json:"desc"`
	Hours       *float64 `json:"hours"`
	Rate        *float64 `json:"rate"`
}

type UpdateLaborLineRequest struct {
	Description *string  `json:"desc"`
	Hours       *float64 `json:"hours"`
	Rate        *float64 `json:"rate"`
}

type AddPartLineRequest struct {
	PartNumber string   `json:"partNumber"`
	Name       string   `json:"name"`
	Quantity   *float64 `json:"qty"`
	UnitPrice  *float64 `json:"price"`
}

type UpdatePartLineRequest struct {
	PartNumber *string  `json:"partNumber"`
	Name       *string  `json:"name"`
	Quantity   *float64 `json:"qty"`
	UnitPrice  *float64 `json:"price"`
}
