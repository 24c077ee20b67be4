// Package web is the rendering layer: it turns handler data plus the current
// user and any pending flash message into HTML pages.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/models"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// View is the root object every template receives.
type View struct {
	User  *models.User // nil when logged out
	Flash *Flash
	Data  interface{}
}

// Renderer executes the embedded template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// HTML renders the named page template. The page is buffered so a template
// failure produces a clean 500 instead of a half-written body.
func (rn *Renderer) HTML(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	view := View{
		User:  auth.UserFrom(r.Context()),
		Flash: PopFlash(w, r),
		Data:  data,
	}

	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		log.Error().Err(err).Str("template", name).Msg("Failed to render template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
