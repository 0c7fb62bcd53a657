// internal/ai/client.go
package ai

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// Generator is the slice of the model provider the extraction and
// translation flows depend on. Tests substitute a stub.
type Generator interface {
	// GenerateText runs a plain completion and returns the response text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateJSON runs a completion constrained to the given output schema
	// and returns the raw JSON response.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error)
}

// Client wraps the GenAI SDK with lazy initialization. The underlying
// client is created on first use and reused across calls.
type Client struct {
	apiKey string
	model  string

	mu          sync.Mutex
	genaiClient *genai.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

func (c *Client) getOrCreateClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.genaiClient != nil {
		return c.genaiClient, nil
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("model provider API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  c.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	c.genaiClient = client
	return client, nil
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := c.getOrCreateClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}

func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	client, err := c.getOrCreateClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return []byte(resp.Text()), nil
}
