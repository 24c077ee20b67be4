package models

import "time"

// User represents a member account in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Weight       string    `json:"weight"`
	Height       string    `json:"height"`
	Goal         string    `json:"goal"`
	Avatar       string    `json:"avatar"` // Generated filename in the upload store, empty when unset
	CreatedAt    time.Time `json:"createdAt"`
}
