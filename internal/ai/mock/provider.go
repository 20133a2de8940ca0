package mock

import (
	"context"

	ai "github.com/hireloop/candidatehub/internal/ai/core"
	"github.com/hireloop/candidatehub/pkg/models"
)

// MockGenerator satisfies models.QuestionGenerator for testing.
type MockGenerator struct {
	Name_        string
	Model_       string
	GenerateFunc func(ctx context.Context, req models.GenerationRequest) ([]models.InterviewQuestion, error)
}

func (m *MockGenerator) Name() string  { return m.Name_ }
func (m *MockGenerator) Model() string { return m.Model_ }

func (m *MockGenerator) GenerateQuestions(ctx context.Context, req models.GenerationRequest) ([]models.InterviewQuestion, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return nil, nil
}

// NewMockGenerator returns a MockGenerator with sensible default responses.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		Name_:  "mock",
		Model_: "mock-v1",
		GenerateFunc: func(_ context.Context, _ models.GenerationRequest) ([]models.InterviewQuestion, error) {
			return []models.InterviewQuestion{
				{
					Question: "How would you approach scaling a service under sudden load?",
					Category: models.CategoryJDBased,
					Context:  "Probes fit for the capacity-planning work named in the role.",
				},
				{
					Question: "Tell us about a project where you led a migration.",
					Category: models.CategoryExperience,
					Context:  "The resume lists several platform migrations.",
				},
			}, nil
		},
	}
}

// NewFailingGenerator returns a MockGenerator that always returns the given error.
func NewFailingGenerator(err error) *MockGenerator {
	return &MockGenerator{
		Name_:  "mock-failing",
		Model_: "mock-v1",
		GenerateFunc: func(_ context.Context, _ models.GenerationRequest) ([]models.InterviewQuestion, error) {
			return nil, err
		},
	}
}

// NewTimeoutGenerator returns a MockGenerator that blocks until context is cancelled.
func NewTimeoutGenerator() *MockGenerator {
	return &MockGenerator{
		Name_:  "mock-timeout",
		Model_: "mock-v1",
		GenerateFunc: func(ctx context.Context, _ models.GenerationRequest) ([]models.InterviewQuestion, error) {
			<-ctx.Done()
			return nil, ai.ErrGenerationTimeout
		},
	}
}

// Compile-time check that MockGenerator implements QuestionGenerator.
var _ models.QuestionGenerator = (*MockGenerator)(nil)
