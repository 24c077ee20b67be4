package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fitzone/fitzone-be/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id string) (models.User, error)
	CreateUser(name, email, password string) (models.User, error)
	AuthenticateUser(email, password string) (models.User, error)
	UpdateProfile(id, weight, height, goal string) error
	SetAvatar(id, filename string) error
}

// UserService provides business logic for user management.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// scanUser is a helper to scan a user from a row or rows object.
func scanUser(scanner interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	var weight, height, goal, avatar sql.NullString

	err := scanner.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&weight, &height, &goal, &avatar, &user.CreatedAt,
	)
	if err != nil {
		return user, err
	}

	user.Weight = weight.String
	user.Height = height.String
	user.Goal = goal.String
	user.Avatar = avatar.String
	return user, nil
}

const userColumns = "id, name, email, password_hash, weight, height, goal, avatar, created_at"

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by their email, including the password hash.
func (s *UserService) GetUserByEmail(email string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser registers a new user, hashing their password. All three fields
// are required after trimming; the email must not already be registered.
func (s *UserService) CreateUser(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return models.User{}, &ValidationError{Msg: "Please fill all fields"}
	}

	if _, err := s.GetUserByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if err != ErrNotFound {
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, name, email, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Name, user.Email, user.PasswordHash)
	if err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials. Email and password are
// trimmed the same way CreateUser trims them.
func (s *UserService) AuthenticateUser(email, password string) (models.User, error) {
	password = strings.TrimSpace(password)
	user, err := s.GetUserByEmail(strings.TrimSpace(email))
	if err != nil {
		if err == ErrNotFound {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile overwrites the weight, height and goal fields verbatim.
// Values are stored as given, including empty strings.
func (s *UserService) UpdateProfile(id, weight, height, goal string) error {
	stmt, err := s.db.Prepare("UPDATE users SET weight = ?, height = ?, goal = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(weight, height, goal, id)
	return err
}

// SetAvatar records the generated avatar filename on the user row. The
// previous file, if any, stays in the upload store.
func (s *UserService) SetAvatar(id, filename string) error {
	_, err := s.db.Exec("UPDATE users SET avatar = ? WHERE id = ?", filename, id)
	return err
}
