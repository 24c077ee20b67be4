package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitzone/fitzone-be/internal/api"
	"github.com/fitzone/fitzone-be/internal/auth"
	"github.com/fitzone/fitzone-be/internal/config"
	"github.com/fitzone/fitzone-be/internal/database"
	"github.com/fitzone/fitzone-be/internal/logger"
	"github.com/fitzone/fitzone-be/internal/services"
	"github.com/fitzone/fitzone-be/internal/uploads"
	"github.com/fitzone/fitzone-be/internal/web"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init()

	if cfg.SessionSecret == config.InsecureSessionSecret {
		zlog.Warn().Msg("SESSION_SECRET is not set; using the insecure default. Do not run like this in production.")
	}

	// Set up the upload store (creates the directory if missing)
	store, err := uploads.NewStore(cfg.UploadPath)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed reference content: %v", err)
	}

	// Set up services
	userService := services.NewUserService(db)
	progressService := services.NewProgressService(db)
	contentService := services.NewContentService(db)
	contactService := services.NewContactService(db)

	// Set up sessions and the HTML renderer
	sessions := auth.NewSessions(cfg.SessionSecret, cfg.Production)
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Set up router
	router := api.NewRouter(renderer, sessions, store, userService, progressService, contentService, contactService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		zlog.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zlog.Info().Msg("Server exiting")
}
