package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/candidatehub/internal/ai"
	"github.com/hireloop/candidatehub/internal/config"
)

func TestNewGenerator_Gemini(t *testing.T) {
	cfg := config.AIConfig{
		Provider: "gemini",
		Gemini:   config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-pro"},
	}
	g, err := ai.NewGenerator(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "gemini", g.Name())
	assert.Equal(t, "gemini-2.5-pro", g.Model())
}

func TestNewGenerator_OpenAI(t *testing.T) {
	cfg := config.AIConfig{
		Provider: "openai",
		OpenAI:   config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4"},
	}
	g, err := ai.NewGenerator(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai", g.Name())
	assert.Equal(t, "gpt-4", g.Model())
}

func TestNewGenerator_Unknown(t *testing.T) {
	cfg := config.AIConfig{Provider: "unknown-provider"}
	_, err := ai.NewGenerator(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
	assert.Contains(t, err.Error(), "unknown-provider")
}

func TestNewGenerator_Empty(t *testing.T) {
	cfg := config.AIConfig{Provider: ""}
	_, err := ai.NewGenerator(context.Background(), cfg)
	require.Error(t, err)
}
