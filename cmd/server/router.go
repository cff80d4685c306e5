package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cramdeck/cramdeck-api/internal/api"
	apiMiddleware "github.com/cramdeck/cramdeck-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	tokenLifetime := time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		tokenLifetime,
	)
	generationHandler := api.NewGenerationHandler(app.engine)
	setHandler := api.NewFlashcardSetHandler(app.setStore, app.logger)
	guideHandler := api.NewStudyGuideHandler(app.guideStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Generation endpoints (public, stateless)
		r.Post("/generate/flashcards", generationHandler.GenerateFlashcards)
		r.Post("/generate/study-guide", generationHandler.GenerateStudyGuide)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			// Flashcard set endpoints
			r.Post("/flashcard-sets", setHandler.SaveSet)
			r.Get("/flashcard-sets", setHandler.ListSets)
			r.Delete("/flashcard-sets/{id}", setHandler.DeleteSet)

			// Study guide endpoints
			r.Post("/study-guides", guideHandler.SaveGuide)
			r.Get("/study-guides", guideHandler.ListGuides)
			r.Delete("/study-guides/{id}", guideHandler.DeleteGuide)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
