package handlers

import (
	"errors"
	"net/http"

	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/web"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	renderer *web.Renderer
	sessions *auth.Sessions
	users    services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *web.Renderer, sessions *auth.Sessions, users services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{renderer: renderer, sessions: sessions, users: users}
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, r, "register.html", nil)
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	_, err := h.users.CreateUser(r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			web.SetFlash(w, "danger", ve.Msg)
		case errors.Is(err, services.ErrEmailTaken):
			web.SetFlash(w, "danger", "Email already registered")
		default:
			log.Error().Err(err).Msg("Failed to register user")
			web.SetFlash(w, "danger", "Registration failed, please try again")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	web.SetFlash(w, "success", "Registered — please login")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, r, "login.html", nil)
}

// Login authenticates a user and creates their session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	user, err := h.users.AuthenticateUser(email, r.PostFormValue("password"))
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Str("email", email).Msg("Login lookup failed")
		} else {
			log.Warn().Str("email", email).Msg("Failed authentication attempt")
		}
		web.SetFlash(w, "danger", "Invalid credentials")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.sessions.Issue(w, user.ID); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create session")
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, "success", "Logged in")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// Logout destroys the current session. It is a no-op when already logged out.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	web.SetFlash(w, "info", "Logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
