package response

import "plumbing_portal/internal/domain/catalog"

type CategoryResponse struct {
	Category string   `json:"category"`
	Caption  string   `json:"caption"`
	Services []string `json:"services"`
}

type BusinessResponse struct {
	Name           string   `json:"name"`
	EmergencyPhone string   `json:"emergency_phone"`
	OfficeHours    []string `json:"office_hours"`
	ServiceArea    []string `json:"service_area"`
}

type CatalogResponse struct {
	Categories         []CategoryResponse `json:"categories"`
	Urgencies          []string           `json:"urgencies"`
	DefaultUrgency     string             `json:"default_urgency"`
	ContactPreferences []string           `json:"contact_preferences"`
	Business           BusinessResponse   `json:"business"`
}

func FromCatalog(c catalog.Catalog, defaultUrgency string) CatalogResponse {
	res := CatalogResponse{DefaultUrgency: defaultUrgency}
	for _, ci := range c.Categories() {
		res.Categories = append(res.Categories, CategoryResponse{
			Category: string(ci.Category),
			Caption:  ci.Caption,
			Services: ci.Services,
		})
	}
	for _, u := range c.Urgencies() {
		res.Urgencies = append(res.Urgencies, string(u))
	}
	for _, p := range c.ContactPreferences() {
		res.ContactPreferences = append(res.ContactPreferences, string(p))
	}
	p := c.Profile()
	res.Business = BusinessResponse{
		Name:           p.Name,
		EmergencyPhone: p.EmergencyPhone,
		OfficeHours:    p.OfficeHours,
		ServiceArea:    p.ServiceArea,
	}
	return res
}
