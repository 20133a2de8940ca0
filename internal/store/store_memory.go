package store

import (
	"context"
	"sort"
	"sync"

	"github.com/hireloop/candidatehub/pkg/models"
)

// MemoryStore is an in-memory Store used by unit tests. It mirrors the
// Postgres gateway's semantics: ErrNotFound for absent keys, REJECTED
// excluded from ListByJob, and score-less candidates excluded from range
// scans. Error fields, when set, are returned by the corresponding method
// to simulate store failures.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*models.Candidate

	GetErr    error
	ListErr   error
	UpdateErr error
	PutErr    error

	// UpdateCount counts successful UpdateCandidate calls.
	UpdateCount int
}

func NewMemoryStore(candidates ...*models.Candidate) *MemoryStore {
	s := &MemoryStore{records: make(map[string]*models.Candidate)}
	for _, c := range candidates {
		copied := *c
		s.records[key(c.JobID, c.CandidateID)] = &copied
	}
	return s
}

func key(jobID, candidateID string) string {
	return jobID + "/" + candidateID
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) GetCandidate(_ context.Context, jobID, candidateID string) (*models.Candidate, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.records[key(jobID, candidateID)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *MemoryStore) ListByScoreRange(_ context.Context, minScore, maxScore float64, status string) ([]*models.Candidate, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Candidate
	for _, c := range s.sorted() {
		if c.AbsoluteScore == nil {
			continue
		}
		if *c.AbsoluteScore < minScore || *c.AbsoluteScore > maxScore {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryStore) ListByJob(_ context.Context, jobID string) ([]*models.Candidate, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Candidate
	for _, c := range s.sorted() {
		if c.JobID != jobID {
			continue
		}
		if c.Status != models.StatusAccepted && c.Status != models.StatusInConsideration {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryStore) UpdateCandidate(_ context.Context, jobID, candidateID string, opts ...CandidateUpdate) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.records[key(jobID, candidateID)]
	if !ok {
		return ErrNotFound
	}

	params := &candidateUpdateParams{}
	for _, opt := range opts {
		opt(params)
	}
	if params.Status != nil {
		c.Status = *params.Status
	}
	if params.VerdictComment != nil {
		c.VerdictComment = *params.VerdictComment
	}
	if params.QuestionsKey != nil {
		k := *params.QuestionsKey
		c.QuestionsObjectKey = &k
	}

	s.UpdateCount++
	return nil
}

func (s *MemoryStore) PutCandidate(_ context.Context, c *models.Candidate) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *c
	s.records[key(c.JobID, c.CandidateID)] = &copied
	return nil
}

// sorted returns records in composite-key order, matching the Postgres scan
// order. Callers must hold the mutex.
func (s *MemoryStore) sorted() []*models.Candidate {
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*models.Candidate, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.records[k])
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
