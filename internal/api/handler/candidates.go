package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/candidatehub/internal/api/response"
	"github.com/hireloop/candidatehub/internal/candidates"
	"github.com/hireloop/candidatehub/internal/store"
	"github.com/hireloop/candidatehub/pkg/models"
)

// RangeLister defines the interface the range handler depends on.
type RangeLister interface {
	ListInRange(ctx context.Context, minScore, maxScore float64) ([]*models.Candidate, error)
}

// NewRangeHandler returns an http.HandlerFunc for GET /api/v1/candidates/range.
// min_score and max_score default to the borderline review window.
func NewRangeHandler(svc RangeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minScore, err := queryFloat(r, "min_score", candidates.DefaultMinScore)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "min_score must be a number", nil)
			return
		}
		maxScore, err := queryFloat(r, "max_score", candidates.DefaultMaxScore)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "max_score must be a number", nil)
			return
		}
		if minScore > maxScore {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "min_score must not exceed max_score", nil)
			return
		}

		list, err := svc.ListInRange(r.Context(), minScore, maxScore)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "STORE_FAILURE", "Error fetching candidates", nil)
			return
		}
		if list == nil {
			list = []*models.Candidate{}
		}
		response.JSON(w, list)
	}
}

// RankedLister defines the interface the ranked-listing handler depends on.
type RankedLister interface {
	ListRankedForJob(ctx context.Context, jobID string) ([]*models.Candidate, error)
}

// NewRankedListHandler returns an http.HandlerFunc for
// GET /api/v1/candidates/getAllCandidates.
func NewRankedListHandler(svc RankedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID := r.URL.Query().Get("job_id")
		if jobID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "job_id is required", nil)
			return
		}

		list, err := svc.ListRankedForJob(r.Context(), jobID)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "STORE_FAILURE", "Error fetching candidates", nil)
			return
		}
		if list == nil {
			list = []*models.Candidate{}
		}
		response.JSON(w, list)
	}
}

// VerdictSetter defines the interface the accept/reject handlers depend on.
type VerdictSetter interface {
	SetVerdict(ctx context.Context, jobID, candidateID, status, comment string) error
}

type verdictRequest struct {
	JobID          string `json:"job_id"`
	CandidateID    string `json:"candidate_id"`
	VerdictComment string `json:"verdict_comment"`
}

// NewVerdictHandler returns an http.HandlerFunc that terminalizes a
// candidate with the given status. Used for both
// POST /api/v1/candidates/accept and POST /api/v1/candidates/reject.
func NewVerdictHandler(svc VerdictSetter, status string) http.HandlerFunc {
	verb := "accepted"
	if status == models.StatusRejected {
		verb = "rejected"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req verdictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}
		if req.JobID == "" || req.CandidateID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "job_id and candidate_id are required", nil)
			return
		}

		err := svc.SetVerdict(r.Context(), req.JobID, req.CandidateID, status, req.VerdictComment)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				response.Error(w, http.StatusNotFound, "CANDIDATE_NOT_FOUND", err.Error(), nil)
				return
			}
			response.Error(w, http.StatusInternalServerError, "STORE_FAILURE", "Error updating candidate verdict", nil)
			return
		}

		response.JSON(w, map[string]string{
			"message": "Candidate " + verb + " successfully",
		})
	}
}

// CandidateAdder defines the interface the sample handler depends on.
type CandidateAdder interface {
	Add(ctx context.Context, c *models.Candidate) error
}

// NewSampleHandler returns an http.HandlerFunc for POST /api/v1/candidates/sample.
// It seeds one IN_CONSIDERATION record for manual testing of the workflow.
func NewSampleHandler(svc CandidateAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JobID string `json:"job_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}
		if req.JobID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "job_id is required", nil)
			return
		}

		sample := &models.Candidate{
			JobID:            req.JobID,
			CandidateID:      uuid.NewString(),
			Name:             "Sample Candidate",
			Email:            "sample.candidate@example.com",
			AbsoluteScore:    ptr(75.0),
			CulturalFitScore: ptr(80.0),
			JDScore:          ptr(70.0),
			Status:           models.StatusInConsideration,
			IngestedAt:       time.Now().UTC(),
		}

		if err := svc.Add(r.Context(), sample); err != nil {
			response.Error(w, http.StatusInternalServerError, "STORE_FAILURE", "Failed to add sample data", nil)
			return
		}

		response.Created(w, sample)
	}
}

func queryFloat(r *http.Request, name string, defaultVal float64) (float64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(v, 64)
}

func ptr(f float64) *float64 { return &f }
