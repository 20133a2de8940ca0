package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hireloop/candidatehub/internal/ai"
	"github.com/hireloop/candidatehub/internal/api/response"
	"github.com/hireloop/candidatehub/internal/objectstore"
	"github.com/hireloop/candidatehub/internal/questions"
	"github.com/hireloop/candidatehub/internal/store"
)

// QuestionService defines the interface the questions handler depends on.
type QuestionService interface {
	Generate(ctx context.Context, jobID, candidateID string) (*questions.Result, error)
}

// NewQuestionsHandler returns an http.HandlerFunc for
// POST /api/v1/candidates/questions.
func NewQuestionsHandler(svc QuestionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JobID       string `json:"job_id"`
			CandidateID string `json:"candidate_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}
		if req.JobID == "" || req.CandidateID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "job_id and candidate_id are required", nil)
			return
		}

		result, err := svc.Generate(r.Context(), req.JobID, req.CandidateID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound), errors.Is(err, objectstore.ErrNotFound):
				response.Error(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			case errors.Is(err, ai.ErrGenerationTimeout):
				response.Error(w, http.StatusGatewayTimeout, "AI_GENERATION_TIMEOUT",
					"Question generation took too long and was cancelled", nil)
			case errors.Is(err, ai.ErrProviderUnavailable):
				response.Error(w, http.StatusBadGateway, "AI_PROVIDER_UNAVAILABLE",
					"The AI provider is not available", nil)
			default:
				response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
					"Failed to generate questions", nil)
			}
			return
		}

		response.JSON(w, map[string]any{
			"questions":  result.Questions,
			"object_key": result.ObjectKey,
			"provider":   result.Provider,
			"model":      result.Model,
		})
	}
}
