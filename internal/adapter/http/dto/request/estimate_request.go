package request

import (
	"plumbing_portal/internal/domain/entities"
	"strings"
)

// EstimateRequest is the query of GET /v1/estimates.
// Any service type is accepted; unknown ones get the default range.
type EstimateRequest struct {
	ServiceType string `form:"service_type" json:"service_type"`
	Urgency     string `form:"urgency" json:"urgency"`
}

func (r EstimateRequest) ResolveServiceType() string {
	return strings.TrimSpace(r.ServiceType)
}

// ResolveUrgency falls back to the form's default urgency when none is given.
func (r EstimateRequest) ResolveUrgency() entities.Urgency {
	if v := strings.TrimSpace(r.Urgency); v != "" {
		return entities.Urgency(v)
	}
	return entities.DefaultUrgency
}
