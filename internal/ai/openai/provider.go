package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	ai "github.com/hireloop/candidatehub/internal/ai/core"
	"github.com/hireloop/candidatehub/internal/config"
	"github.com/hireloop/candidatehub/pkg/models"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Provider implements models.QuestionGenerator using the OpenAI
// chat-completions API.
type Provider struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewProvider(cfg config.OpenAIConfig) *Provider {
	return &Provider{cfg: cfg, client: &http.Client{}}
}

func (p *Provider) Name() string  { return "openai" }
func (p *Provider) Model() string { return p.cfg.Model }

func (p *Provider) GenerateQuestions(ctx context.Context, genReq models.GenerationRequest) ([]models.InterviewQuestion, error) {
	prompt, err := ai.BuildPrompt(genReq)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"model": p.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an interview question generator. Return only valid JSON."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.5,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ai.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", ai.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ai.ErrProviderUnavailable, resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrInvalidResponse, err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s", ai.ErrProviderUnavailable, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ai.ErrInvalidResponse)
	}

	return ai.ParseQuestions(result.Choices[0].Message.Content)
}

var _ models.QuestionGenerator = (*Provider)(nil)
