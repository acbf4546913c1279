package repository

import (
	"time"

	"plumbing_portal/internal/domain/entities"
)

func sampleRequest(at time.Time) entities.ServiceRequest {
	return entities.ServiceRequest{
		CustomerInfo: entities.CustomerInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Address:  "12 Elm St, San Jose",
		},
		ServiceDetails: entities.ServiceDetails{
			Category:          entities.CategoryRepair,
			Type:              "Leaky Faucet",
			Urgency:           entities.UrgencyNeedSoon,
			Description:       "Kitchen tap drips all night",
			ContactPreference: entities.ContactMorning,
		},
		PhotoUploaded:         true,
		PreliminaryPriceRange: "$75 - $250",
	}.Stamp(at)
}
