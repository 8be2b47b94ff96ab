package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Defaults for the generation endpoint.
const (
	defaultMaxNewTokens = 256
	defaultTemperature  = 0.2
	defaultTopP         = 0.95
	generateTimeout     = 60 * time.Second
)

// GenerateRequest is the wire format of the remote generation endpoint.
type GenerateRequest struct {
	Prompt       string  `json:"prompt"`
	System       string  `json:"system"`
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
}

// GenerateResponse is the generation endpoint's reply.
type GenerateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Client calls the remote text-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the generation service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: generateTimeout},
	}
}

// Generate sends a prompt plus system instruction and returns the generated
// text. Transport errors and non-2xx statuses are returned as errors for the
// caller to surface to the user.
func (c *Client) Generate(ctx context.Context, prompt, system string) (string, error) {
	reqBody := GenerateRequest{
		Prompt:       prompt,
		System:       system,
		MaxNewTokens: defaultMaxNewTokens,
		Temperature:  defaultTemperature,
		TopP:         defaultTopP,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(body))
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}

	return genResp.GeneratedText, nil
}

// Health probes the generation service's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("generation service returned %d", resp.StatusCode)
	}
	return nil
}
