package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hireloop/candidatehub/internal/candidates"
	"github.com/hireloop/candidatehub/internal/store"
	"github.com/hireloop/candidatehub/pkg/models"
)

// --- mocks ---

type mockRangeLister struct {
	fn func(minScore, maxScore float64) ([]*models.Candidate, error)
}

func (m *mockRangeLister) ListInRange(_ context.Context, minScore, maxScore float64) ([]*models.Candidate, error) {
	return m.fn(minScore, maxScore)
}

type mockRankedLister struct {
	fn func(jobID string) ([]*models.Candidate, error)
}

func (m *mockRankedLister) ListRankedForJob(_ context.Context, jobID string) ([]*models.Candidate, error) {
	return m.fn(jobID)
}

type mockVerdictSetter struct {
	fn func(jobID, candidateID, status, comment string) error
}

func (m *mockVerdictSetter) SetVerdict(_ context.Context, jobID, candidateID, status, comment string) error {
	return m.fn(jobID, candidateID, status, comment)
}

type mockAdder struct {
	fn func(c *models.Candidate) error
}

func (m *mockAdder) Add(_ context.Context, c *models.Candidate) error {
	return m.fn(c)
}

func testCandidate(id string, score float64) *models.Candidate {
	return &models.Candidate{
		JobID:         "J1",
		CandidateID:   id,
		Name:          "Test Candidate",
		AbsoluteScore: &score,
		Status:        models.StatusInConsideration,
		IngestedAt:    time.Now().UTC(),
	}
}

// --- helpers ---

func jsonReq(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, _ := json.Marshal(body)
	r := httptest.NewRequest(method, target, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func parseListOK(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func parseErr(t *testing.T, rec *httptest.ResponseRecorder) (int, string) {
	t.Helper()
	var env struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, env.Error.Code
}

// --- range handler ---

func TestRangeHandler_Defaults(t *testing.T) {
	var gotMin, gotMax float64
	mock := &mockRangeLister{fn: func(minScore, maxScore float64) ([]*models.Candidate, error) {
		gotMin, gotMax = minScore, maxScore
		return nil, nil
	}}

	h := NewRangeHandler(mock)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/range", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotMin != candidates.DefaultMinScore || gotMax != candidates.DefaultMaxScore {
		t.Errorf("expected defaults %v/%v, got %v/%v",
			candidates.DefaultMinScore, candidates.DefaultMaxScore, gotMin, gotMax)
	}
}

func TestRangeHandler_ExplicitBounds(t *testing.T) {
	var gotMin, gotMax float64
	mock := &mockRangeLister{fn: func(minScore, maxScore float64) ([]*models.Candidate, error) {
		gotMin, gotMax = minScore, maxScore
		return []*models.Candidate{testCandidate("C1", 65)}, nil
	}}

	h := NewRangeHandler(mock)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/candidates/range?min_score=60.5&max_score=70", nil))

	data := parseListOK(t, rec)
	if len(data) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(data))
	}
	if gotMin != 60.5 || gotMax != 70 {
		t.Errorf("expected 60.5/70, got %v/%v", gotMin, gotMax)
	}
}

func TestRangeHandler_NonNumericBound(t *testing.T) {
	h := NewRangeHandler(&mockRangeLister{fn: func(_, _ float64) ([]*models.Candidate, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/range?min_score=abc", nil))

	status, code := parseErr(t, rec)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
}

func TestRangeHandler_InvertedRange(t *testing.T) {
	h := NewRangeHandler(&mockRangeLister{fn: func(_, _ float64) ([]*models.Candidate, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/candidates/range?min_score=60&max_score=40", nil))

	status, code := parseErr(t, rec)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
}

func TestRangeHandler_EmptyResultIsArray(t *testing.T) {
	h := NewRangeHandler(&mockRangeLister{fn: func(_, _ float64) ([]*models.Candidate, error) {
		return nil, nil
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/range", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(env.Data) != "[]" {
		t.Errorf("expected empty array, got %s", env.Data)
	}
}

func TestRangeHandler_StoreFailure(t *testing.T) {
	h := NewRangeHandler(&mockRangeLister{fn: func(_, _ float64) ([]*models.Candidate, error) {
		return nil, errors.New("connection refused")
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/range", nil))

	status, code := parseErr(t, rec)
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if code != "STORE_FAILURE" {
		t.Errorf("expected STORE_FAILURE, got %s", code)
	}
}

// --- ranked list handler ---

func TestRankedListHandler_Success(t *testing.T) {
	var gotJobID string
	mock := &mockRankedLister{fn: func(jobID string) ([]*models.Candidate, error) {
		gotJobID = jobID
		return []*models.Candidate{testCandidate("C1", 90), testCandidate("C2", 80)}, nil
	}}

	h := NewRankedListHandler(mock)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/candidates/getAllCandidates?job_id=J1", nil))

	data := parseListOK(t, rec)
	if gotJobID != "J1" {
		t.Errorf("expected job_id J1, got %s", gotJobID)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(data))
	}
	if data[0]["candidate_id"] != "C1" {
		t.Errorf("expected C1 first, got %v", data[0]["candidate_id"])
	}
}

func TestRankedListHandler_MissingJobID(t *testing.T) {
	h := NewRankedListHandler(&mockRankedLister{fn: func(string) ([]*models.Candidate, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/candidates/getAllCandidates", nil))

	status, code := parseErr(t, rec)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
}

func TestRankedListHandler_StoreFailure(t *testing.T) {
	h := NewRankedListHandler(&mockRankedLister{fn: func(string) ([]*models.Candidate, error) {
		return nil, errors.New("connection refused")
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/candidates/getAllCandidates?job_id=J1", nil))

	status, code := parseErr(t, rec)
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if code != "STORE_FAILURE" {
		t.Errorf("expected STORE_FAILURE, got %s", code)
	}
}

// --- verdict handlers ---

func TestVerdictHandler_Accept(t *testing.T) {
	var gotStatus, gotComment string
	mock := &mockVerdictSetter{fn: func(_, _, status, comment string) error {
		gotStatus, gotComment = status, comment
		return nil
	}}

	h := NewVerdictHandler(mock, models.StatusAccepted)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/accept", map[string]any{
		"job_id":          "J1",
		"candidate_id":    "C1",
		"verdict_comment": "strong system design round",
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotStatus != models.StatusAccepted {
		t.Errorf("expected status ACCEPTED, got %s", gotStatus)
	}
	if gotComment != "strong system design round" {
		t.Errorf("unexpected comment: %s", gotComment)
	}

	var env struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["message"] != "Candidate accepted successfully" {
		t.Errorf("unexpected message: %s", env.Data["message"])
	}
}

func TestVerdictHandler_Reject(t *testing.T) {
	var gotStatus string
	mock := &mockVerdictSetter{fn: func(_, _, status, _ string) error {
		gotStatus = status
		return nil
	}}

	h := NewVerdictHandler(mock, models.StatusRejected)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/reject", map[string]any{
		"job_id":       "J1",
		"candidate_id": "C1",
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotStatus != models.StatusRejected {
		t.Errorf("expected status REJECTED, got %s", gotStatus)
	}
}

func TestVerdictHandler_MissingIDs(t *testing.T) {
	for _, body := range []map[string]any{
		{"candidate_id": "C1"},
		{"job_id": "J1"},
		{},
	} {
		h := NewVerdictHandler(&mockVerdictSetter{fn: func(_, _, _, _ string) error {
			t.Fatal("service should not be called")
			return nil
		}}, models.StatusAccepted)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/accept", body))

		status, code := parseErr(t, rec)
		if status != http.StatusBadRequest {
			t.Errorf("body %v: expected 400, got %d", body, status)
		}
		if code != "INVALID_REQUEST" {
			t.Errorf("body %v: expected INVALID_REQUEST, got %s", body, code)
		}
	}
}

func TestVerdictHandler_InvalidJSON(t *testing.T) {
	h := NewVerdictHandler(&mockVerdictSetter{fn: func(_, _, _, _ string) error {
		return nil
	}}, models.StatusAccepted)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/candidates/accept",
		bytes.NewReader([]byte("{invalid"))))

	status, code := parseErr(t, rec)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
}

func TestVerdictHandler_NotFound(t *testing.T) {
	mock := &mockVerdictSetter{fn: func(jobID, candidateID, _, _ string) error {
		return fmt.Errorf("candidate %s/%s: %w", jobID, candidateID, store.ErrNotFound)
	}}

	h := NewVerdictHandler(mock, models.StatusRejected)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/reject", map[string]any{
		"job_id":       "J1",
		"candidate_id": "ghost",
	}))

	status, code := parseErr(t, rec)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if code != "CANDIDATE_NOT_FOUND" {
		t.Errorf("expected CANDIDATE_NOT_FOUND, got %s", code)
	}
}

func TestVerdictHandler_StoreFailure(t *testing.T) {
	mock := &mockVerdictSetter{fn: func(_, _, _, _ string) error {
		return errors.New("connection refused")
	}}

	h := NewVerdictHandler(mock, models.StatusAccepted)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/accept", map[string]any{
		"job_id":       "J1",
		"candidate_id": "C1",
	}))

	status, code := parseErr(t, rec)
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if code != "STORE_FAILURE" {
		t.Errorf("expected STORE_FAILURE, got %s", code)
	}
}

// --- sample handler ---

func TestSampleHandler_Success(t *testing.T) {
	var added *models.Candidate
	mock := &mockAdder{fn: func(c *models.Candidate) error {
		added = c
		return nil
	}}

	h := NewSampleHandler(mock)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/sample", map[string]any{
		"job_id": "J1",
	}))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if added == nil {
		t.Fatal("expected a candidate to be added")
	}
	if added.JobID != "J1" {
		t.Errorf("expected job J1, got %s", added.JobID)
	}
	if added.CandidateID == "" {
		t.Error("expected a generated candidate_id")
	}
	if added.Status != models.StatusInConsideration {
		t.Errorf("expected IN_CONSIDERATION, got %s", added.Status)
	}
}

func TestSampleHandler_MissingJobID(t *testing.T) {
	h := NewSampleHandler(&mockAdder{fn: func(*models.Candidate) error {
		t.Fatal("service should not be called")
		return nil
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/sample", map[string]any{}))

	status, code := parseErr(t, rec)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
}

func TestSampleHandler_StoreFailure(t *testing.T) {
	h := NewSampleHandler(&mockAdder{fn: func(*models.Candidate) error {
		return errors.New("connection refused")
	}})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, jsonReq(t, http.MethodPost, "/api/v1/candidates/sample", map[string]any{
		"job_id": "J1",
	}))

	status, code := parseErr(t, rec)
	if status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", status)
	}
	if code != "STORE_FAILURE" {
		t.Errorf("expected STORE_FAILURE, got %s", code)
	}
}
