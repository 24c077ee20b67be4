package models

import "time"

// ProgressEntry is a single dated weigh-in logged by a user. Entries are
// immutable once written and belong to exactly one user.
type ProgressEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Weight    string    `json:"weight"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
