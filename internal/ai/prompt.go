package ai

import (
	"github.com/hireloop/candidatehub/internal/ai/core"
	"github.com/hireloop/candidatehub/pkg/models"
)

// BuildPrompt renders the question-generation prompt shared by all
// providers. Both documents are embedded as indented JSON.
func BuildPrompt(req models.GenerationRequest) (string, error) {
	return core.BuildPrompt(req)
}

// ParseQuestions decodes a provider's raw JSON output into questions,
// tolerating markdown code fences around the array.
func ParseQuestions(raw string) ([]models.InterviewQuestion, error) {
	return core.ParseQuestions(raw)
}
