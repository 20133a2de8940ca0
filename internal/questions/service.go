// Package questions orchestrates interview-question generation: it loads
// the candidate's parsed analysis and the job description from the object
// store, calls the configured generator, stores the result, and links the
// stored key to the candidate record.
package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hireloop/candidatehub/internal/ai"
	"github.com/hireloop/candidatehub/internal/objectstore"
	"github.com/hireloop/candidatehub/internal/store"
	"github.com/hireloop/candidatehub/pkg/models"
)

// Result is the outcome of a successful generation run.
type Result struct {
	Questions []models.InterviewQuestion
	ObjectKey string
	Provider  string
	Model     string
}

// Service ties the record store, object store, and generator together.
type Service struct {
	store     store.Store
	objects   objectstore.Store
	generator models.QuestionGenerator
	timeout   time.Duration
}

func NewService(st store.Store, objects objectstore.Store, generator models.QuestionGenerator, timeout time.Duration) *Service {
	return &Service{
		store:     st,
		objects:   objects,
		generator: generator,
		timeout:   timeout,
	}
}

// Generate produces interview questions for one candidate. The questions
// object is written to the object store before the candidate record is
// linked to it, so a linked key always refers to a durably stored object.
// Failures after the object write leave an unlinked object behind; the next
// run overwrites it.
func (s *Service) Generate(ctx context.Context, jobID, candidateID string) (*Result, error) {
	candidate, err := s.store.GetCandidate(ctx, jobID, candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("candidate with job_id %s and candidate_id %s: %w", jobID, candidateID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up candidate %s/%s: %w", jobID, candidateID, err)
	}

	if candidate.ParsedObjectKey == nil || *candidate.ParsedObjectKey == "" {
		return nil, fmt.Errorf("candidate %s/%s has no parsed resume: %w", jobID, candidateID, objectstore.ErrNotFound)
	}

	var analysis map[string]any
	if err := s.objects.GetJSON(ctx, *candidate.ParsedObjectKey, &analysis); err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, fmt.Errorf("parsed resume %s: %w", *candidate.ParsedObjectKey, objectstore.ErrNotFound)
		}
		return nil, fmt.Errorf("fetching parsed resume: %w", err)
	}

	jdKey := objectstore.JobDescriptionKey(jobID)
	var jobDescription map[string]any
	if err := s.objects.GetJSON(ctx, jdKey, &jobDescription); err != nil {
		if errors.Is(err, objectstore.ErrNotFound) {
			return nil, fmt.Errorf("job description %s: %w", jdKey, objectstore.ErrNotFound)
		}
		return nil, fmt.Errorf("fetching job description: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	generated, err := s.generator.GenerateQuestions(genCtx, models.GenerationRequest{
		JobDescription:    jobDescription,
		CandidateAnalysis: analysis,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ai.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("generating questions for %s/%s: %w", jobID, candidateID, err)
	}

	key := objectstore.QuestionsKey(jobID, candidateID)
	payload := models.QuestionSet{
		Version:     models.QuestionSetVersion,
		Provider:    s.generator.Name(),
		Model:       s.generator.Model(),
		GeneratedAt: time.Now().UTC(),
		Questions:   generated,
	}

	if err := s.objects.PutJSON(ctx, key, payload); err != nil {
		return nil, fmt.Errorf("storing questions for %s/%s: %w", jobID, candidateID, err)
	}

	if err := s.store.UpdateCandidate(ctx, jobID, candidateID, store.WithQuestionsKey(key)); err != nil {
		return nil, fmt.Errorf("linking questions key for %s/%s: %w", jobID, candidateID, err)
	}

	slog.Info("questions generated",
		"job_id", jobID,
		"candidate_id", candidateID,
		"count", len(generated),
		"provider", s.generator.Name(),
	)

	return &Result{
		Questions: generated,
		ObjectKey: key,
		Provider:  s.generator.Name(),
		Model:     s.generator.Model(),
	}, nil
}
