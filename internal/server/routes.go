package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/hearttoheart/backend/internal/gemini"
)

func addRoutes(r chi.Router, logger *slog.Logger, store *Store, sessions *Registry, client gemini.Client, db *sql.DB, spaDir string, freeStoryLimit int) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("HeartToHeart API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/session", handleSession(sessions))

	// Session-scoped routes resolved by Bearer token.
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))

		r.Get("/api/catalog", handleCatalog())

		r.Get("/api/flow", handleFlowState())
		r.Post("/api/flow/role", handleSelectRole())
		r.Post("/api/flow/age-group", handleSelectAgeGroup())
		r.Post("/api/flow/profile", handleUpdateProfile())
		r.Post("/api/flow/profile/submit", handleSubmitProfile())
		r.Post("/api/flow/assessment", handleSelectAssessment())
		r.Post("/api/flow/answer", handleAnswer())
		r.Post("/api/flow/submit", handleSubmit(client, broker))
		r.Post("/api/flow/back", handleBack())
		r.Post("/api/flow/reset", handleReset())
		r.Post("/api/flow/language", handleSetLanguage())
		r.Post("/api/flow/deeplink", handleDeepLink())

		r.Post("/api/chat", handleChat(client))
		r.Post("/api/tip", handleTip(client))
		r.Post("/api/solutions/{id}/scenario", handleScenario(client))
		r.Post("/api/story", handleStory(client, store, broker, freeStoryLimit))
	})

	// SSE authenticates via query parameter, not the Authorization header.
	r.Get("/api/flow/events", handleEvents(sessions, broker))

	// Admin auth and stats.
	r.Post("/api/admin/login", handleAdminLogin(store))
	r.Post("/api/admin/logout", handleAdminLogout(store))
	r.Get("/api/admin/me", handleAdminMe(store))

	r.Group(func(r chi.Router) {
		r.Use(adminAuthMiddleware(store))
		r.Get("/api/admin/stats", handleAdminStats(store, sessions))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
