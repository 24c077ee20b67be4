package handlers

import (
	"net/http"

	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/web"
	"github.com/rs/zerolog/log"
)

// PageHandler serves the landing page and the reference-content listings.
type PageHandler struct {
	renderer *web.Renderer
	content  services.ContentServiceProvider
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(renderer *web.Renderer, content services.ContentServiceProvider) *PageHandler {
	return &PageHandler{renderer: renderer, content: content}
}

// Index renders the landing page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, r, "index.html", nil)
}

// Workouts lists all workout plans.
func (h *PageHandler) Workouts(w http.ResponseWriter, r *http.Request) {
	plans, err := h.content.GetAllWorkouts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list workout plans")
		http.Error(w, "Failed to load workouts", http.StatusInternalServerError)
		return
	}
	h.renderer.HTML(w, r, "workouts.html", plans)
}

// Nutrition lists all recipes.
func (h *PageHandler) Nutrition(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.content.GetAllRecipes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list recipes")
		http.Error(w, "Failed to load recipes", http.StatusInternalServerError)
		return
	}
	h.renderer.HTML(w, r, "nutrition.html", recipes)
}

// Calculators renders the static calculator page.
func (h *PageHandler) Calculators(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, r, "calculators.html", nil)
}

// Blog lists blog posts, newest first.
func (h *PageHandler) Blog(w http.ResponseWriter, r *http.Request) {
	posts, err := h.content.GetBlogPosts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list blog posts")
		http.Error(w, "Failed to load blog", http.StatusInternalServerError)
		return
	}
	h.renderer.HTML(w, r, "blog.html", posts)
}
