package gateway

import (
	"context"
	"fmt"
)

// a single multimodal generation call
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

type Modality string

const (
	ModalityImage Modality = "image"
	ModalityText  Modality = "text"
)

type Request struct {
	Prompt string
	// embedded image as a data URL
	Image      string
	Modalities []Modality
}

// requests image output; otherwise the call runs in vision (text only) mode
func (r Request) WantsImage() bool {
	for _, m := range r.Modalities {
		if m == ModalityImage {
			return true
		}
	}

	return false
}

// Image is empty when the provider answered without one
type Response struct {
	Image string
	Text  string
}

// non-2xx answer from the provider
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gateway returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}
