package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/roomrevive/server/internal/media"
	"google.golang.org/genai"
)

type GenAIConfig struct {
	APIKey      string
	ImageModel  string
	VisionModel string
}

// calls Gemini directly through the genai SDK
type GenAIClient struct {
	models      contentGenerator
	imageModel  string
	visionModel string
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func NewGenAIClient(ctx context.Context, config GenAIConfig) (*GenAIClient, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIClient{
		models:      client.Models,
		imageModel:  strings.TrimPrefix(config.ImageModel, "models/"),
		visionModel: strings.TrimPrefix(config.VisionModel, "models/"),
	}, nil
}

func (c *GenAIClient) Generate(ctx context.Context, req Request) (*Response, error) {
	img, err := media.DecodeDataURL(req.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: req.Prompt},
				{InlineData: &genai.Blob{MIMEType: img.MIMEType, Data: img.Data}},
			},
		},
	}

	model := c.visionModel
	var genConfig *genai.GenerateContentConfig

	if req.WantsImage() {
		model = c.imageModel
		genConfig = &genai.GenerateContentConfig{ResponseModalities: responseModalities(req.Modalities)}
	}

	resp, err := c.models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return nil, mapGenAIError(err)
	}

	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out, nil
	}

	var text []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}

		if part.InlineData != nil && len(part.InlineData.Data) > 0 && out.Image == "" {
			out.Image = media.EncodeDataURL(part.InlineData.MIMEType, part.InlineData.Data)
			continue
		}

		if part.Text != "" {
			text = append(text, part.Text)
		}
	}

	out.Text = strings.Join(text, "\n")
	return out, nil
}

func responseModalities(in []Modality) []string {
	out := make([]string, 0, len(in))
	for _, m := range in {
		out = append(out, strings.ToUpper(string(m)))
	}

	return out
}

// lifts the SDK's API error into a StatusError so classification stays provider-neutral
func mapGenAIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &StatusError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}

	return fmt.Errorf("genai request failed: %w", err)
}
