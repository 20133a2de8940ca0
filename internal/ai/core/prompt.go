package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hireloop/candidatehub/pkg/models"
)

// BuildPrompt renders the question-generation prompt shared by all
// providers. Both documents are embedded as indented JSON.
func BuildPrompt(req models.GenerationRequest) (string, error) {
	jd, err := json.MarshalIndent(req.JobDescription, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job description: %w", err)
	}
	analysis, err := json.MarshalIndent(req.CandidateAnalysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate analysis: %w", err)
	}

	return fmt.Sprintf(`Generate 3-5 interview questions for a candidate based on the following information.

Job Description:
%s

Candidate Experience:
%s

Cover a mix of these categories:
- %s: understanding of and fit for the role
- %s: past experience and achievements
- %s: current industry trends and technologies
- %s: technical leadership
- %s: team management
- %s: problem solving

For each question provide the question text, its category (one of the
category identifiers above), and a brief context explaining why the question
is relevant to this candidate.

Return ONLY a valid JSON array of objects with "question", "category", and
"context" fields. Example:
[
  {
    "question": "How would you approach implementing a microservices architecture?",
    "category": "jd_based",
    "context": "Assesses the candidate's understanding of the architecture named in the role."
  }
]`,
		jd, analysis,
		models.CategoryJDBased, models.CategoryExperience, models.CategoryTrending,
		models.CategoryTechLeadership, models.CategoryTeamManagement, models.CategoryProblemSolving), nil
}

// ParseQuestions decodes a provider's raw JSON output into questions,
// tolerating markdown code fences around the array.
func ParseQuestions(raw string) ([]models.InterviewQuestion, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var questions []models.InterviewQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrInvalidResponse)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidResponse, i)
		}
	}
	return questions, nil
}

// extractJSON strips a surrounding markdown fence, if any, and trims to the
// outermost JSON array.
func extractJSON(s string) string {
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
