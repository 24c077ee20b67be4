package models

import "time"

// ContactMessage is a message submitted through the contact form. The
// application only writes these; they are read out-of-band.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
