package handlers

import (
	"errors"
	"net/http"

	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/web"
	"github.com/rs/zerolog/log"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	renderer *web.Renderer
	contacts services.ContactServiceProvider
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(renderer *web.Renderer, contacts services.ContactServiceProvider) *ContactHandler {
	return &ContactHandler{renderer: renderer, contacts: contacts}
}

// Show renders the contact form.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, r, "contact.html", nil)
}

// Submit stores a contact message. No email is sent; messages are read
// out-of-band.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	err := h.contacts.CreateMessage(r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("message"))
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			web.SetFlash(w, "danger", ve.Msg)
		} else {
			log.Error().Err(err).Msg("Failed to store contact message")
			web.SetFlash(w, "danger", "Something went wrong, please try again")
		}
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	web.SetFlash(w, "success", "Message sent — we will contact you")
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
