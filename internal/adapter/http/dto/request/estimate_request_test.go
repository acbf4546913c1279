package request

import (
	"testing"

	"plumbing_portal/internal/domain/entities"
)

func TestEstimateRequest_Resolve(t *testing.T) {
	r := EstimateRequest{ServiceType: " Leaky Faucet ", Urgency: " Emergency - Water Everywhere! "}
	if got := r.ResolveServiceType(); got != "Leaky Faucet" {
		t.Fatalf("expected Leaky Faucet, got %q", got)
	}
	if got := r.ResolveUrgency(); got != entities.UrgencyEmergency {
		t.Fatalf("expected emergency urgency, got %q", got)
	}

	r2 := EstimateRequest{}
	if got := r2.ResolveUrgency(); got != entities.DefaultUrgency {
		t.Fatalf("expected default urgency, got %q", got)
	}
	if got := r2.ResolveServiceType(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
