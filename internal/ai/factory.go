package ai

import (
	"context"
	"fmt"

	"github.com/hireloop/candidatehub/internal/ai/gemini"
	"github.com/hireloop/candidatehub/internal/ai/openai"
	"github.com/hireloop/candidatehub/internal/config"
	"github.com/hireloop/candidatehub/pkg/models"
)

// NewGenerator constructs the appropriate question generator based on config.
// Called once at server startup.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (models.QuestionGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewProvider(ctx, cfg.Gemini)
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of gemini, openai", cfg.Provider)
	}
}
