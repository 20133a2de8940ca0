// Package models contains shared data models used across the candidatehub codebase.
package models

import "time"

const (
	StatusInConsideration = "IN_CONSIDERATION"
	StatusAccepted        = "ACCEPTED"
	StatusRejected        = "REJECTED"
)

// Candidate is one applicant record for one job. The pair
// (JobID, CandidateID) is the only stable key and never changes after
// ingestion. Score fields and object keys are pointers because each of them
// is independently optional: a candidate may exist before scoring or parsing
// has completed.
type Candidate struct {
	JobID               string     `db:"job_id"                json:"job_id"`
	CandidateID         string     `db:"candidate_id"          json:"candidate_id"`
	Name                string     `db:"name"                  json:"name"`
	Email               string     `db:"email"                 json:"email"`
	ResumeObjectKey     *string    `db:"resume_object_key"     json:"resume_object_key,omitempty"`
	ParsedObjectKey     *string    `db:"parsed_object_key"     json:"parsed_object_key,omitempty"`
	QuestionsObjectKey  *string    `db:"questions_object_key"  json:"questions_object_key,omitempty"`
	JDScore             *float64   `db:"jd_score"              json:"jd_score,omitempty"`
	CulturalFitScore    *float64   `db:"cultural_fit_score"    json:"cultural_fit_score,omitempty"`
	UniquenessScore     *float64   `db:"uniqueness_score"      json:"uniqueness_score,omitempty"`
	CustomCriteriaScore *float64   `db:"custom_criteria_score" json:"custom_criteria_score,omitempty"`
	AbsoluteScore       *float64   `db:"absolute_score"        json:"absolute_score,omitempty"`
	Status              string     `db:"status"                json:"status"`
	VerdictComment      string     `db:"verdict_comment"       json:"verdict_comment,omitempty"`
	IngestedAt          time.Time  `db:"ingested_at"           json:"ingested_at"`
}

// IsTerminal reports whether the candidate has received a verdict.
func (c *Candidate) IsTerminal() bool {
	return c.Status == StatusAccepted || c.Status == StatusRejected
}
