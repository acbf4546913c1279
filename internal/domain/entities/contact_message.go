package entities

import "time"

// ContactMessage is a free-form message sent from the contact page.
// It is acknowledged but never stored.
type ContactMessage struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

const ContactConfirmationText = "Message sent! We'll respond within 2 hours during business hours."

type ContactConfirmation struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}
