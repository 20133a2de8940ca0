// Package candidates implements candidate retrieval, score-based filtering,
// deterministic ranking, and verdict transitions.
package candidates

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hireloop/candidatehub/internal/store"
	"github.com/hireloop/candidatehub/pkg/models"
)

// Default score window for the borderline-candidate review queue.
const (
	DefaultMinScore = 45
	DefaultMaxScore = 55
)

// Service owns candidate listing, ranking, and verdict logic. It is
// stateless; every call is a request-scoped round-trip to the store.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// ListInRange returns IN_CONSIDERATION candidates whose absolute score lies
// within [minScore, maxScore]. Candidates without an absolute score are
// never returned, even when the range could be read as containing "no
// score". No ordering is imposed on the result.
func (s *Service) ListInRange(ctx context.Context, minScore, maxScore float64) ([]*models.Candidate, error) {
	if minScore > maxScore {
		return nil, fmt.Errorf("invalid score range: min %v > max %v", minScore, maxScore)
	}
	candidates, err := s.store.ListByScoreRange(ctx, minScore, maxScore, models.StatusInConsideration)
	if err != nil {
		return nil, fmt.Errorf("listing candidates in range [%v, %v]: %w", minScore, maxScore, err)
	}
	return candidates, nil
}

// ListRankedForJob returns all ACCEPTED and IN_CONSIDERATION candidates for
// the job, sorted best-first. An empty job yields an empty slice, not an
// error; only a store failure is an error.
func (s *Service) ListRankedForJob(ctx context.Context, jobID string) ([]*models.Candidate, error) {
	candidates, err := s.store.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("listing candidates for job %s: %w", jobID, err)
	}
	sortByScores(candidates)
	return candidates, nil
}

// SetVerdict moves a candidate to ACCEPTED or REJECTED and records the
// rationale, as one atomic update. The existence check always runs first so
// an unknown candidate surfaces as ErrNotFound (with both ids) rather than
// a generic store failure, and no write is issued for it. A candidate that
// already has a verdict is overwritten; re-verdicting is not rejected.
func (s *Service) SetVerdict(ctx context.Context, jobID, candidateID, status, comment string) error {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return fmt.Errorf("invalid verdict status %q", status)
	}

	if _, err := s.store.GetCandidate(ctx, jobID, candidateID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("candidate with job_id %s and candidate_id %s: %w", jobID, candidateID, store.ErrNotFound)
		}
		return fmt.Errorf("looking up candidate %s/%s: %w", jobID, candidateID, err)
	}

	err := s.store.UpdateCandidate(ctx, jobID, candidateID,
		store.WithStatus(status),
		store.WithVerdictComment(comment))
	if err != nil {
		return fmt.Errorf("updating verdict for %s/%s: %w", jobID, candidateID, err)
	}
	return nil
}

// RecordQuestionsKey links a durably written questions object to the
// candidate record. Existence is assumed to have been confirmed by the
// caller's earlier fetch; an unknown record still fails with ErrNotFound
// from the store.
func (s *Service) RecordQuestionsKey(ctx context.Context, jobID, candidateID, objectKey string) error {
	err := s.store.UpdateCandidate(ctx, jobID, candidateID, store.WithQuestionsKey(objectKey))
	if err != nil {
		return fmt.Errorf("recording questions key for %s/%s: %w", jobID, candidateID, err)
	}
	return nil
}

// Add inserts or overwrites a candidate record. Creation path only.
func (s *Service) Add(ctx context.Context, c *models.Candidate) error {
	if err := s.store.PutCandidate(ctx, c); err != nil {
		return fmt.Errorf("adding candidate %s/%s: %w", c.JobID, c.CandidateID, err)
	}
	return nil
}

// sortByScores orders candidates by descending
// (absolute_score, jd_score, cultural_fit_score, uniqueness_score), in that
// tie-break priority. A missing score compares as 0, so unscored candidates
// sink to the bottom of their tier. The sort is stable for deterministic
// output on fully tied candidates.
func sortByScores(candidates []*models.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := rankKey(candidates[i]), rankKey(candidates[j])
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
}

func rankKey(c *models.Candidate) [4]float64 {
	return [4]float64{
		scoreOrZero(c.AbsoluteScore),
		scoreOrZero(c.JDScore),
		scoreOrZero(c.CulturalFitScore),
		scoreOrZero(c.UniquenessScore),
	}
}

func scoreOrZero(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
