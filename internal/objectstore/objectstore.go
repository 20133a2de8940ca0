// Package objectstore provides JSON blob storage for resumes, parsed
// analyses, job descriptions, and generated question sets.
package objectstore

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("object not found")

// Store is the object-store interface. Absent objects are ErrNotFound; any
// other error is a communication failure.
type Store interface {
	// GetJSON fetches and decodes the JSON object at key into out.
	GetJSON(ctx context.Context, key string, out any) error
	// PutJSON marshals value and writes it at key, overwriting any existing
	// object.
	PutJSON(ctx context.Context, key string, value any) error
	Ping(ctx context.Context) error
}

// QuestionsKey returns the object key for a candidate's generated questions.
func QuestionsKey(jobID, candidateID string) string {
	return fmt.Sprintf("%s/%s/questions.json", jobID, candidateID)
}

// JobDescriptionKey returns the object key for a job's description document.
func JobDescriptionKey(jobID string) string {
	return fmt.Sprintf("%s/config/job-description.json", jobID)
}
