package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fitzone/fitzone-be/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookie = "session"

// sessionTTL bounds the client-side lifetime of a login.
const sessionTTL = 7 * 24 * time.Hour

// Claims defines the JWT claims carried by the session cookie.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type contextKey string

const userKey = contextKey("currentUser")

// UserResolver loads a user row for the session middleware.
type UserResolver interface {
	GetUserByID(id string) (models.User, error)
}

// Sessions issues and validates the signed session cookie.
type Sessions struct {
	secret []byte
	secure bool
}

// NewSessions creates a session manager signing with the given secret.
func NewSessions(secret string, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), secure: secure}
}

// Issue creates a session for the user and sets it as a cookie.
func (s *Sessions) Issue(w http.ResponseWriter, userID string) error {
	expirationTime := time.Now().Add(sessionTTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Expires:  expirationTime,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Clear destroys the session cookie. Safe to call when no session exists.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// validate parses and validates a session token string.
func (s *Sessions) validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// LoadUser resolves the current user from the session cookie on every
// request and stores it (or nil) in the request context. A missing, expired
// or tampered cookie is treated the same as being logged out.
func (s *Sessions) LoadUser(users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := s.validate(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser redirects to the login page when no user is logged in.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the current user from the request context, or nil when
// the request is unauthenticated.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
