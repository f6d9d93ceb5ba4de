package routes

import (
	"net/http"

	"github.com/templui/goalsetter/internal/app"
	"github.com/templui/goalsetter/internal/handler"
	"github.com/templui/goalsetter/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.Cfg.AppName)
	users := handler.NewUserHandler(app.AuthService, app.UserService)
	goals := handler.NewGoalHandler(app.GoalService)

	handle := middleware.HandleErrors
	requireAuth := middleware.RequireAuth(app.AuthService)
	rateLimiter := middleware.RateLimitAuth()

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", handle(health.Health))

	// Users (rate limited)
	mux.HandleFunc("POST /api/users", rateLimiter(handle(users.Register)))
	mux.HandleFunc("POST /api/users/login", rateLimiter(handle(users.Login)))

	// ============================================================================
	// PROTECTED ROUTES (bearer token)
	// ============================================================================

	mux.HandleFunc("GET /api/users/me", handle(requireAuth(users.Me)))

	// Goals
	mux.HandleFunc("GET /api/goals", handle(requireAuth(goals.List)))
	mux.HandleFunc("POST /api/goals", handle(requireAuth(goals.Create)))
	mux.HandleFunc("PUT /api/goals/{id}", handle(requireAuth(goals.Update)))
	mux.HandleFunc("DELETE /api/goals/{id}", handle(requireAuth(goals.Delete)))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", handle(middleware.NotFound))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Recover,
	)
}
