package services

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

// ContactServiceProvider defines the interface for contact-form submissions.
type ContactServiceProvider interface {
	CreateMessage(name, email, message string) error
}

// ContactService stores contact-form submissions. Messages are write-only
// from the application's point of view.
type ContactService struct {
	db *sql.DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *sql.DB) *ContactService {
	return &ContactService{db: db}
}

// CreateMessage validates and stores one contact-form submission. All three
// fields are required after trimming.
func (s *ContactService) CreateMessage(name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return &ValidationError{Msg: "Please fill all fields"}
	}

	stmt, err := s.db.Prepare("INSERT INTO contacts (id, name, email, message) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(uuid.New().String(), name, email, message)
	return err
}
