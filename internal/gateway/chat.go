package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 4096

// shared HTTP client for gateway calls; callers bound each call with a context deadline
var chatHTTPClient = &http.Client{
	Timeout: 180 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Modalities []Modality    `json:"modalities,omitempty"`
}

type chatMessage struct {
	Role    string     `json:"role"`
	Content []chatPart `json:"content"`
}

type chatPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Images  []struct {
				Type     string   `json:"type"`
				ImageURL imageURL `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}

type ChatConfig struct {
	URL         string
	APIKey      string
	ImageModel  string
	VisionModel string
	// outbound requests per second; zero disables throttling
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
}

// talks to an OpenAI-compatible chat completions gateway that can return images
type ChatCompletionsClient struct {
	config     ChatConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewChatCompletionsClient(config ChatConfig) *ChatCompletionsClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = chatHTTPClient
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RequestsPerSecond > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}

		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), burst)
	}

	return &ChatCompletionsClient{
		config:     config,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

func (c *ChatCompletionsClient) Generate(ctx context.Context, req Request) (*Response, error) {
	model := c.config.VisionModel
	if req.WantsImage() {
		model = c.config.ImageModel
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []chatPart{
					{Type: "text", Text: req.Prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: req.Image}},
				},
			},
		},
	}

	if req.WantsImage() {
		reqBody.Modalities = req.Modalities
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)) //nolint:errcheck
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	out := &Response{}
	if len(chatResp.Choices) == 0 {
		return out, nil
	}

	msg := chatResp.Choices[0].Message
	out.Text = msg.Content

	if len(msg.Images) > 0 {
		out.Image = msg.Images[0].ImageURL.URL
	}

	return out, nil
}
