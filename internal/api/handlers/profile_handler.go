package handlers

import (
	"errors"
	"net/http"

	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/models"
	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/uploads"
	"github.com/fitzone/fitzone-be/internal/web"
	"github.com/rs/zerolog/log"
)

// maxAvatarMemory caps how much of a multipart upload is buffered in memory.
const maxAvatarMemory = 10 << 20

// ProfileHandler handles the profile page, profile updates and progress logging.
type ProfileHandler struct {
	renderer *web.Renderer
	users    services.UserServiceProvider
	progress services.ProgressServiceProvider
	store    *uploads.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(renderer *web.Renderer, users services.UserServiceProvider, progress services.ProgressServiceProvider, store *uploads.Store) *ProfileHandler {
	return &ProfileHandler{renderer: renderer, users: users, progress: progress, store: store}
}

// profileView is the data the profile template receives.
type profileView struct {
	Profile  models.User
	Progress []models.ProgressEntry
}

// Show renders the profile page with the user's progress history.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	current := auth.UserFrom(r.Context())

	user, err := h.users.GetUserByID(current.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to load profile")
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	entries, err := h.progress.GetEntriesForUser(current.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to load progress entries")
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	h.renderer.HTML(w, r, "profile.html", profileView{Profile: user, Progress: entries})
}

// Update overwrites the profile fields and, when a file was attached, stores
// a new avatar. The field update and the avatar update are separate
// statements; a failure in between leaves the fields already written.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	current := auth.UserFrom(r.Context())

	// A plain urlencoded post (no file input) is still a valid update.
	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	err := h.users.UpdateProfile(current.ID, r.PostFormValue("weight"), r.PostFormValue("height"), r.PostFormValue("goal"))
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to update profile")
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err == nil && header.Filename != "" {
		defer file.Close()

		filename, err := h.store.Save(header.Filename, file)
		if err != nil {
			if errors.Is(err, uploads.ErrBadExtension) {
				web.SetFlash(w, "danger", "Invalid file type")
				http.Redirect(w, r, "/profile", http.StatusSeeOther)
				return
			}
			log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to store avatar")
			http.Error(w, "Failed to store avatar", http.StatusInternalServerError)
			return
		}

		if err := h.users.SetAvatar(current.ID, filename); err != nil {
			log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to record avatar")
			http.Error(w, "Failed to store avatar", http.StatusInternalServerError)
			return
		}
	}

	web.SetFlash(w, "success", "Profile updated")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// AddProgress logs one progress entry for the current user.
func (h *ProfileHandler) AddProgress(w http.ResponseWriter, r *http.Request) {
	current := auth.UserFrom(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	err := h.progress.AddEntry(current.ID, r.PostFormValue("date"), r.PostFormValue("weight"), r.PostFormValue("note"))
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to add progress entry")
		http.Error(w, "Failed to save progress", http.StatusInternalServerError)
		return
	}

	web.SetFlash(w, "success", "Progress saved")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
