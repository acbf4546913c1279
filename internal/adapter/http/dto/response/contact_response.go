package response

import (
	"plumbing_portal/internal/domain/entities"
	"time"
)

type ContactConfirmationResponse struct {
	MessageID  string    `json:"message_id"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

func FromContactConfirmation(c entities.ContactConfirmation) ContactConfirmationResponse {
	return ContactConfirmationResponse{MessageID: c.ID, Message: c.Text, ReceivedAt: c.ReceivedAt}
}
