package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	ai "github.com/hireloop/candidatehub/internal/ai/core"
	"github.com/hireloop/candidatehub/internal/config"
	"github.com/hireloop/candidatehub/pkg/models"
)

// Provider implements models.QuestionGenerator using the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

func NewProvider(ctx context.Context, cfg config.GeminiConfig) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Provider{client: client, model: cfg.Model}, nil
}

func (p *Provider) Name() string  { return "gemini" }
func (p *Provider) Model() string { return p.model }

func (p *Provider) GenerateQuestions(ctx context.Context, req models.GenerationRequest) ([]models.InterviewQuestion, error) {
	prompt, err := ai.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ai.ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", ai.ErrProviderUnavailable, err)
	}

	raw := collectText(resp)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ai.ErrInvalidResponse)
	}

	return ai.ParseQuestions(raw)
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

var _ models.QuestionGenerator = (*Provider)(nil)
