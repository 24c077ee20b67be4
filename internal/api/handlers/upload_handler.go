package handlers

import (
	"net/http"

	"github.com/fitzone/fitzone-be/internal/uploads"
	"github.com/go-chi/chi/v5"
)

// UploadHandler serves files out of the upload store. There is no access
// control; the unguessable generated filenames are the only protection.
type UploadHandler struct {
	store *uploads.Store
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store *uploads.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve streams the named file, or responds 404 when it is not stored.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	path, err := h.store.Path(filename)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
