package store

import (
	"context"
	"errors"

	"github.com/hireloop/candidatehub/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the record-store gateway. All candidate reads and writes go
// through here. "Not found" is always ErrNotFound; any other error is a
// store communication failure. The gateway never retries.
type Store interface {
	Ping(ctx context.Context) error

	// GetCandidate returns the candidate for the composite key, or
	// ErrNotFound if no such record exists.
	GetCandidate(ctx context.Context, jobID, candidateID string) (*models.Candidate, error)

	// ListByScoreRange returns every candidate whose absolute_score is
	// present and within [minScore, maxScore], filtered by status when one
	// is given. The scan pages through the store exhaustively before
	// returning; callers never see a partial result.
	ListByScoreRange(ctx context.Context, minScore, maxScore float64, status string) ([]*models.Candidate, error)

	// ListByJob returns every ACCEPTED or IN_CONSIDERATION candidate for the
	// job, in store order. REJECTED candidates are excluded from this view
	// but remain reachable via GetCandidate.
	ListByJob(ctx context.Context, jobID string) ([]*models.Candidate, error)

	// UpdateCandidate applies the given field updates as a single atomic
	// update. Returns ErrNotFound if the record does not exist and an error
	// if no updates are given. Callers that need a richer not-found message
	// should check existence first.
	UpdateCandidate(ctx context.Context, jobID, candidateID string, opts ...CandidateUpdate) error

	// PutCandidate unconditionally inserts or overwrites a record. Used only
	// on the record-creation path.
	PutCandidate(ctx context.Context, c *models.Candidate) error
}

type candidateUpdateParams struct {
	Status         *string
	VerdictComment *string
	QuestionsKey   *string
}

// CandidateUpdate selects which fields UpdateCandidate changes.
type CandidateUpdate func(*candidateUpdateParams)

func WithStatus(status string) CandidateUpdate {
	return func(p *candidateUpdateParams) {
		p.Status = &status
	}
}

func WithVerdictComment(comment string) CandidateUpdate {
	return func(p *candidateUpdateParams) {
		p.VerdictComment = &comment
	}
}

func WithQuestionsKey(key string) CandidateUpdate {
	return func(p *candidateUpdateParams) {
		p.QuestionsKey = &key
	}
}
