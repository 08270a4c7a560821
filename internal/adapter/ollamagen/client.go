package ollamagen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"open-instruct/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Client wraps a langchaingo Ollama LLM with connection checking.
// It is shared by the objective and quiz generators.
type Client struct {
	llm        *ollama.LLM
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a Client for the configured Ollama server and model.
func NewClient(cfg config.OllamaConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ollama base URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Client{
		llm:        llm,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: httpClient,
	}, nil
}

// Call sends a prompt to the model and returns the raw completion.
// A low temperature keeps the JSON output stable.
func (c *Client) Call(ctx context.Context, prompt string) (string, error) {
	response, err := c.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

// CheckConnection verifies the Ollama server is reachable by hitting
// its /api/tags endpoint.
func (c *Client) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("failed to build connection check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot connect to Ollama at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}
	return nil
}

// ModelVersion returns the configured model name.
func (c *Client) ModelVersion() string {
	return c.model
}
