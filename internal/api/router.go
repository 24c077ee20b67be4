package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fitzone/fitzone-be/internal/api/handlers"
	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/uploads"
	"github.com/fitzone/fitzone-be/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	renderer *web.Renderer,
	sessions *auth.Sessions,
	store *uploads.Store,
	userService services.UserServiceProvider,
	progressService services.ProgressServiceProvider,
	contentService services.ContentServiceProvider,
	contactService services.ContactServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Resolve the current user (or nil) before every handler
	r.Use(sessions.LoadUser(userService))

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(renderer, contentService)
	authHandler := handlers.NewAuthHandler(renderer, sessions, userService)
	profileHandler := handlers.NewProfileHandler(renderer, userService, progressService, store)
	contactHandler := handlers.NewContactHandler(renderer, contactService)
	calcHandler := handlers.NewCalcHandler()
	uploadHandler := handlers.NewUploadHandler(store)

	// Public pages
	r.Get("/", pageHandler.Index)
	r.Get("/workouts", pageHandler.Workouts)
	r.Get("/nutrition", pageHandler.Nutrition)
	r.Get("/calculators", pageHandler.Calculators)
	r.Get("/blog", pageHandler.Blog)

	// Contact form
	r.Get("/contact", contactHandler.Show)
	r.Post("/contact", contactHandler.Submit)

	// Auth
	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)

	// Member-only routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Get("/profile", profileHandler.Show)
		r.Post("/profile", profileHandler.Update)
		r.Post("/add_progress", profileHandler.AddProgress)
	})

	// Uploaded avatar files
	r.Get("/uploads/{filename}", uploadHandler.Serve)

	// Stateless JSON API, callable cross-origin by the static front-end
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Post("/calc", calcHandler.Calculate)
	})

	return r
}
