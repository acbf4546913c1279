package request

import "plumbing_portal/internal/domain/entities"

// ContactMessageRequest is posted by the contact page and POST /v1/contact-messages.
// All fields are optional.
type ContactMessageRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

func (r ContactMessageRequest) ToEntity() entities.ContactMessage {
	return entities.ContactMessage{Name: r.Name, Phone: r.Phone, Message: r.Message}
}
