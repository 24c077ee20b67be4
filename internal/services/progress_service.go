package services

import (
	"database/sql"

	"github.com/fitzone/fitzone-be/internal/models"
	"github.com/google/uuid"
)

// ProgressServiceProvider defines the interface for progress services.
type ProgressServiceProvider interface {
	AddEntry(userID, date, weight, note string) error
	GetEntriesForUser(userID string) ([]models.ProgressEntry, error)
}

// ProgressService provides business logic for progress tracking.
type ProgressService struct {
	db *sql.DB
}

// NewProgressService creates a new ProgressService.
func NewProgressService(db *sql.DB) *ProgressService {
	return &ProgressService{db: db}
}

// AddEntry logs a new progress entry for a user. Date, weight and note are
// stored as given, including blanks.
func (s *ProgressService) AddEntry(userID, date, weight, note string) error {
	entry := models.ProgressEntry{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   date,
		Weight: weight,
		Note:   note,
	}

	stmt, err := s.db.Prepare("INSERT INTO progress (id, user_id, date, weight, note) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(entry.ID, entry.UserID, entry.Date, entry.Weight, entry.Note)
	return err
}

// GetEntriesForUser retrieves a user's progress entries, newest date first.
func (s *ProgressService) GetEntriesForUser(userID string) ([]models.ProgressEntry, error) {
	rows, err := s.db.Query("SELECT id, user_id, date, weight, note, created_at FROM progress WHERE user_id = ? ORDER BY date DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var entry models.ProgressEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Weight, &entry.Note, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
