package models

import (
	"context"
	"time"
)

// Question categories the generator is asked to cover.
const (
	CategoryJDBased        = "jd_based"
	CategoryExperience     = "experience_based"
	CategoryTrending       = "trending"
	CategoryTechLeadership = "technical_leadership"
	CategoryTeamManagement = "team_management"
	CategoryProblemSolving = "problem_solving"
)

// QuestionGenerator is the core interface all LLM integrations must
// implement. Never call specific providers directly — always inject this
// interface.
type QuestionGenerator interface {
	// GenerateQuestions produces interview questions from a job description
	// and a parsed candidate analysis.
	GenerateQuestions(ctx context.Context, req GenerationRequest) ([]InterviewQuestion, error)
	// Name returns the provider identifier (e.g., "gemini", "openai").
	Name() string
	// Model returns the configured model name.
	Model() string
}

// GenerationRequest is the input to a question-generation call. Both fields
// are the decoded JSON documents fetched from the object store.
type GenerationRequest struct {
	JobDescription    map[string]any
	CandidateAnalysis map[string]any
}

// InterviewQuestion is the canonical question shape. Earlier iterations of
// this system also emitted a category→questions map; that shape is not
// accepted or produced anywhere in this codebase.
type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Context  string `json:"context"`
}

// QuestionSetVersion identifies the stored questions.json payload format.
const QuestionSetVersion = 1

// QuestionSet is the versioned payload written to the object store under
// {job_id}/{candidate_id}/questions.json.
type QuestionSet struct {
	Version     int                 `json:"version"`
	Provider    string              `json:"provider"`
	Model       string              `json:"model"`
	GeneratedAt time.Time           `json:"generated_at"`
	Questions   []InterviewQuestion `json:"questions"`
}
