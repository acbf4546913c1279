package response

type EstimateResponse struct {
	ServiceType           string `json:"service_type"`
	Urgency               string `json:"urgency"`
	PreliminaryPriceRange string `json:"preliminary_price_range"`
}
