package geminiclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/client-dashboard-api/internal/config"
	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("gemini api key not configured")

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	cfg    config.Gemini
	client *genai.Client
}

func NewClient(ctx context.Context, cfg config.Gemini) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{cfg: cfg, client: client}, nil
}

// GenerateText envia um único prompt de texto e devolve o texto concatenado da resposta
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.cfg.Temperature),
		TopP:        genai.Ptr(c.cfg.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return resp.Text(), nil
}
