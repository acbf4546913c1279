package response

import (
	"plumbing_portal/internal/domain/entities"
	"time"
)

type ServiceRequestResponse struct {
	RequestID             string                  `json:"request_id"`
	Timestamp             time.Time               `json:"timestamp"`
	PreliminaryPriceRange string                  `json:"preliminary_price_range"`
	PhotoUploaded         bool                    `json:"photo_uploaded"`
	CustomerInfo          entities.CustomerInfo   `json:"customer_info"`
	ServiceDetails        entities.ServiceDetails `json:"service_details"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		RequestID:             r.RequestID,
		Timestamp:             r.Timestamp,
		PreliminaryPriceRange: r.PreliminaryPriceRange,
		PhotoUploaded:         r.PhotoUploaded,
		CustomerInfo:          r.CustomerInfo,
		ServiceDetails:        r.ServiceDetails,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}
