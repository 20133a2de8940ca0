package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/hireloop/candidatehub/internal/api/middleware"
	"github.com/hireloop/candidatehub/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit

	HealthHandler     http.HandlerFunc
	RangeHandler      http.HandlerFunc
	RankedListHandler http.HandlerFunc
	AcceptHandler     http.HandlerFunc
	RejectHandler     http.HandlerFunc
	QuestionsHandler  http.HandlerFunc
	SampleHandler     http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	// Public health check
	r.Get("/api/v1/health", orNotImplemented(deps.HealthHandler))

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.Limit)
		}

		r.Get("/api/v1/candidates/range", orNotImplemented(deps.RangeHandler))
		r.Get("/api/v1/candidates/getAllCandidates", orNotImplemented(deps.RankedListHandler))

		r.Post("/api/v1/candidates/accept", orNotImplemented(deps.AcceptHandler))
		r.Post("/api/v1/candidates/reject", orNotImplemented(deps.RejectHandler))

		r.Post("/api/v1/candidates/questions", orNotImplemented(deps.QuestionsHandler))
		r.Post("/api/v1/candidates/sample", orNotImplemented(deps.SampleHandler))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented", nil)
	}
}
