// Package catalog holds the static service data offered on the intake form:
// categories and their services, the urgency scale, contact windows and the
// business profile shown on the info and contact pages.
package catalog

import "plumbing_portal/internal/domain/entities"

// CategoryInfo is one category with its ordered services.
type CategoryInfo struct {
	Category entities.Category
	Caption  string
	Services []string
}

// BusinessProfile is the contact information shown to customers.
type BusinessProfile struct {
	Name           string
	EmergencyPhone string
	OfficeHours    []string
	ServiceArea    []string
}

// Catalog is passed explicitly to whoever needs it; there is no package-level instance.
type Catalog struct {
	categories         []CategoryInfo
	urgencies          []entities.Urgency
	contactPreferences []entities.ContactPreference
	profile            BusinessProfile
}

// Default returns the catalog the portal ships with.
func Default() Catalog {
	return Catalog{
		categories: []CategoryInfo{
			{
				Category: entities.CategoryEmergency,
				Caption:  "Available 24/7 - Immediate Response",
				Services: []string{
					"Burst Pipe",
					"Severe Drain Clog",
					"No Hot Water",
					"Sewage Backup",
					"Gas Line Issue",
				},
			},
			{
				Category: entities.CategoryRepair,
				Caption:  "Same-day service available",
				Services: []string{
					"Leaky Faucet",
					"Running Toilet",
					"Clogged Drain",
					"Water Heater Repair",
					"Garbage Disposal Repair",
				},
			},
			{
				Category: entities.CategoryInstallation,
				Caption:  "Professional installation & warranty",
				Services: []string{
					"Water Heater Installation",
					"Faucet Installation",
					"Toilet Installation",
					"Garbage Disposal Installation",
					"Pipe Replacement",
				},
			},
		},
		urgencies: []entities.Urgency{
			entities.UrgencyScheduledCheckup,
			entities.UrgencyMinorIssue,
			entities.UrgencyNeedSoon,
			entities.UrgencyWithin24Hours,
			entities.UrgencyEmergency,
		},
		contactPreferences: []entities.ContactPreference{
			entities.ContactAnytime,
			entities.ContactMorning,
			entities.ContactAfternoon,
			entities.ContactEvening,
		},
		profile: BusinessProfile{
			Name:           "Reilly's Plumbing",
			EmergencyPhone: "(510) 690-5197",
			OfficeHours: []string{
				"Monday - Friday: 7:00 AM - 7:00 PM",
				"Saturday: 8:00 AM - 5:00 PM",
				"Sunday: Emergency Service Only",
			},
			ServiceArea: []string{
				"San Jose",
				"Santa Clara",
				"Campbell",
				"Los Gatos",
				"Saratoga",
				"And surrounding communities",
			},
		},
	}
}

// WithProfile returns a copy of c using the given business name and phone.
// Empty values keep the current ones.
func (c Catalog) WithProfile(name, emergencyPhone string) Catalog {
	if name != "" {
		c.profile.Name = name
	}
	if emergencyPhone != "" {
		c.profile.EmergencyPhone = emergencyPhone
	}
	return c
}

func (c Catalog) Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(c.categories))
	for i, ci := range c.categories {
		ci.Services = append([]string(nil), ci.Services...)
		out[i] = ci
	}
	return out
}

// Services returns the ordered services of category, or nil if it is unknown.
func (c Catalog) Services(category entities.Category) []string {
	for _, ci := range c.categories {
		if ci.Category == category {
			return append([]string(nil), ci.Services...)
		}
	}
	return nil
}

func (c Catalog) HasCategory(category entities.Category) bool {
	for _, ci := range c.categories {
		if ci.Category == category {
			return true
		}
	}
	return false
}

// Contains reports whether serviceType is listed under category.
func (c Catalog) Contains(category entities.Category, serviceType string) bool {
	for _, s := range c.Services(category) {
		if s == serviceType {
			return true
		}
	}
	return false
}

func (c Catalog) Urgencies() []entities.Urgency {
	return append([]entities.Urgency(nil), c.urgencies...)
}

func (c Catalog) HasUrgency(u entities.Urgency) bool {
	for _, v := range c.urgencies {
		if v == u {
			return true
		}
	}
	return false
}

func (c Catalog) ContactPreferences() []entities.ContactPreference {
	return append([]entities.ContactPreference(nil), c.contactPreferences...)
}

func (c Catalog) HasContactPreference(p entities.ContactPreference) bool {
	for _, v := range c.contactPreferences {
		if v == p {
			return true
		}
	}
	return false
}

func (c Catalog) Profile() BusinessProfile {
	p := c.profile
	p.OfficeHours = append([]string(nil), c.profile.OfficeHours...)
	p.ServiceArea = append([]string(nil), c.profile.ServiceArea...)
	return p
}
