package pricing

import (
	"fmt"
	"math"

	"plumbing_portal/internal/domain/entities"
)

// EmergencyMultiplier is applied to both bounds when urgency is the emergency label.
const EmergencyMultiplier = 1.5

// DefaultRange is returned for services without a tabulated base price.
// The emergency multiplier is not applied to it.
const DefaultRange = "$150 - $500"

// Bounds is a base price range in whole currency units.
type Bounds struct {
	Min int
	Max int
}

// Estimator computes preliminary price ranges from a fixed base price table.
type Estimator struct {
	basePrices map[string]Bounds
}

func NewEstimator() Estimator {
	return Estimator{basePrices: map[string]Bounds{
		"Burst Pipe":                {Min: 200, Max: 800},
		"Severe Drain Clog":         {Min: 150, Max: 500},
		"No Hot Water":              {Min: 100, Max: 600},
		"Leaky Faucet":              {Min: 75, Max: 250},
		"Running Toilet":            {Min: 50, Max: 200},
		"Water Heater Installation": {Min: 800, Max: 2500},
	}}
}

// BasePrice returns the tabulated bounds of serviceType.
func (e Estimator) BasePrice(serviceType string) (Bounds, bool) {
	b, ok := e.basePrices[serviceType]
	return b, ok
}

// EstimatePriceRange formats the preliminary range for serviceType, e.g. "$75 - $250".
func (e Estimator) EstimatePriceRange(serviceType string, urgency entities.Urgency) string {
	b, ok := e.basePrices[serviceType]
	if !ok {
		return DefaultRange
	}

	multiplier := 1.0
	if urgency == entities.UrgencyEmergency {
		multiplier = EmergencyMultiplier
	}

	lo := math.Floor(float64(b.Min) * multiplier)
	hi := math.Floor(float64(b.Max) * multiplier)
	return fmt.Sprintf("$%d - $%d", int(lo), int(hi))
}
