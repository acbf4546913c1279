package entities

import "time"

// Category groups the services offered on the intake form.
type Category string

const (
	CategoryEmergency    Category = "Emergency"
	CategoryRepair       Category = "Repair"
	CategoryInstallation Category = "Installation"
)

// Urgency is one label of the 5-point urgency scale shown on the form.
type Urgency string

const (
	UrgencyScheduledCheckup Urgency = "Scheduled Check-up"
	UrgencyMinorIssue       Urgency = "Minor Issue - Can Wait"
	UrgencyNeedSoon         Urgency = "Need Soon"
	UrgencyWithin24Hours    Urgency = "Urgent - Within 24 Hours"
	UrgencyEmergency        Urgency = "Emergency - Water Everywhere!"
)

// DefaultUrgency is preselected on the form.
const DefaultUrgency = UrgencyNeedSoon

// ContactPreference is the customer's preferred call-back window.
type ContactPreference string

const (
	ContactAnytime   ContactPreference = "Anytime"
	ContactMorning   ContactPreference = "Morning (8AM-12PM)"
	ContactAfternoon ContactPreference = "Afternoon (12PM-5PM)"
	ContactEvening   ContactPreference = "Evening (5PM-8PM)"
)

// RequestIDPrefix is prepended to the second-resolution timestamp of a request ID.
const RequestIDPrefix = "REQ"

const requestIDLayout = "20060102150405"

// NewRequestID derives a request ID from the save instant, e.g. REQ20240131094500.
func NewRequestID(at time.Time) string {
	return RequestIDPrefix + at.Format(requestIDLayout)
}

type CustomerInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ServiceDetails struct {
	Category          Category          `json:"category"`
	Type              string            `json:"type"`
	Urgency           Urgency           `json:"urgency"`
	Description       string            `json:"description"`
	ContactPreference ContactPreference `json:"contact_preference"`
}

// ServiceRequest is a customer submission as persisted in the request store.
//
// RequestID and Timestamp are stamped once, when the request is saved.
// PreliminaryPriceRange is always computed, never taken from the customer.
type ServiceRequest struct {
	CustomerInfo          CustomerInfo   `json:"customer_info"`
	ServiceDetails        ServiceDetails `json:"service_details"`
	PhotoUploaded         bool           `json:"photo_uploaded"`
	PreliminaryPriceRange string         `json:"preliminary_price_range"`
	Timestamp             time.Time      `json:"timestamp"`
	RequestID             string         `json:"request_id"`
}

// Stamp sets Timestamp and RequestID from a single clock reading.
func (r ServiceRequest) Stamp(now time.Time) ServiceRequest {
	r.Timestamp = now
	r.RequestID = NewRequestID(now)
	return r
}
