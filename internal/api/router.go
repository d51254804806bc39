package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "lexaid/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, caseHandler *CaseHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration liveness
	// and readiness probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	// All primary API endpoints are grouped under the /api/v1 prefix.
	r.Route("/api/v1", func(r chi.Router) {

		// Group for standard JSON API routes that should have a request timeout
		// to prevent client connections from hanging indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Chat ---
			r.Get("/chat/status", chatHandler.HandleStatus)
			r.Get("/chat/sessions/{sessionID}", chatHandler.HandleGetSession)
			r.Post("/chat/summarize", chatHandler.HandleSummarize)

			// --- Case record ---
			r.Get("/case", caseHandler.HandleGetCase)
			r.Post("/case/confirm", caseHandler.HandleConfirm)
			r.Post("/case/reject", caseHandler.HandleReject)
			r.Post("/case/timeline", caseHandler.HandleAddTimelineEvent)
			r.Post("/case/clear", caseHandler.HandleClear)
		})

		// Group for long-running endpoints. These routes must NOT have a
		// timeout: streaming holds the connection open for the whole turn,
		// and uploads run text extraction plus a provider call.
		r.Group(func(r chi.Router) {
			r.Post("/chat/stream", chatHandler.HandleStream)
			r.Post("/chat/upload", chatHandler.HandleUpload)
		})
	})

	return r
}
