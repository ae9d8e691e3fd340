package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeberg.org/roomrevive/server/internal/gateway"
	"codeberg.org/roomrevive/server/internal/redesign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validImage = "data:image/png;base64,aGVsbG8="

const sampleJSON = `{
  "roomType": "living room",
  "currentStyle": "traditional",
  "colorPalette": {"dominant": "warm beige", "accent": ["navy", "brass"], "suggested": ["sage", "cream", "walnut"]},
  "furniture": {"detected": ["sofa", "coffee table"], "suggestions": ["floor lamp", "accent chair", "rug", "bookshelf"]},
  "lighting": "natural light from large windows",
  "recommendations": ["add a rug", "layer lighting", "declutter", "add plants", "update hardware"]
}`

type mockClient struct {
	generateFunc func(ctx context.Context, req gateway.Request) (*gateway.Response, error)
	calls        int
}

func (m *mockClient) Generate(ctx context.Context, req gateway.Request) (*gateway.Response, error) {
	m.calls++
	return m.generateFunc(ctx, req)
}

func textClient(text string, err error) *mockClient {
	return &mockClient{generateFunc: func(context.Context, gateway.Request) (*gateway.Response, error) {
		if err != nil {
			return nil, err
		}
		return &gateway.Response{Text: text}, nil
	}}
}

func requireKind(t *testing.T, err error, kind redesign.Kind) *Failure {
	t.Helper()

	var failure *Failure
	require.True(t, errors.As(err, &failure), "expected *Failure, got %v", err)
	assert.Equal(t, kind, failure.Kind)
	return failure
}

func TestParseAnalysis(t *testing.T) {
	for name, input := range map[string]string{
		"plain":         sampleJSON,
		"json fence":    "```json\n" + sampleJSON + "\n```",
		"bare fence":    "```\n" + sampleJSON + "\n```",
		"padded fences": "  \n```json" + sampleJSON + "```  \n",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAnalysis(input)

			require.NoError(t, err)
			assert.Equal(t, "living room", got.RoomType)
			assert.Equal(t, "warm beige", got.ColorPalette.Dominant)
			assert.Equal(t, []string{"navy", "brass"}, got.ColorPalette.Accent)
			assert.Len(t, got.Furniture.Suggestions, 4)
			assert.Len(t, got.Recommendations, 5)
		})
	}
}

func TestParseAnalysis_Errors(t *testing.T) {
	for _, input := range []string{
		"I'm sorry, I can't analyze this image.",
		`{"roomType": "bedroom"`,
		sampleJSON + " and some commentary",
		"",
		`{"roomType":"bedroom"}}`,
		`{"roomType":"bedroom"}]`,
		"null",
		"```json\nnull\n```",
		`[{"roomType":"bedroom"}]`,
	} {
		_, err := ParseAnalysis(input)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), input)
		assert.Equal(t, input, parseErr.Raw)
	}
}

func TestAnalyze_Success(t *testing.T) {
	var got gateway.Request
	client := &mockClient{generateFunc: func(_ context.Context, req gateway.Request) (*gateway.Response, error) {
		got = req
		return &gateway.Response{Text: "```json\n" + sampleJSON + "\n```"}, nil
	}}

	result, err := NewAnalyzer(client, time.Second).Analyze(context.Background(), Request{UserID: "u", Image: validImage})

	require.NoError(t, err)
	assert.Equal(t, "traditional", result.CurrentStyle)
	assert.False(t, got.WantsImage())
	assert.Equal(t, validImage, got.Image)
	assert.Contains(t, got.Prompt, "Respond ONLY with valid JSON")
}

func TestAnalyze_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want redesign.Kind
	}{
		{"missing image", Request{UserID: "u"}, redesign.KindInvalidImage},
		{"bad prefix", Request{UserID: "u", Image: "iVBORw0KGgo"}, redesign.KindInvalidImage},
		{"no identity", Request{Image: validImage}, redesign.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := textClient(sampleJSON, nil)

			_, err := NewAnalyzer(client, time.Second).Analyze(context.Background(), tt.req)

			requireKind(t, err, tt.want)
			assert.Zero(t, client.calls)
		})
	}
}

func TestAnalyze_ProviderErrors(t *testing.T) {
	tests := []struct {
		err  error
		want redesign.Kind
	}{
		{&gateway.StatusError{StatusCode: 429}, redesign.KindRateLimited},
		{&gateway.StatusError{StatusCode: 402}, redesign.KindQuotaExceeded},
		{&gateway.StatusError{StatusCode: 500}, redesign.KindProviderFailure},
		{errors.New("eof"), redesign.KindProviderFailure},
	}

	for _, tt := range tests {
		_, err := NewAnalyzer(textClient("", tt.err), time.Second).Analyze(context.Background(), Request{UserID: "u", Image: validImage})
		requireKind(t, err, tt.want)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	_, err := NewAnalyzer(textClient("   ", nil), time.Second).Analyze(context.Background(), Request{UserID: "u", Image: validImage})

	requireKind(t, err, redesign.KindProviderFailure)
}

func TestAnalyze_ParseErrorCarriesRawText(t *testing.T) {
	raw := "This looks like a lovely kitchen!"

	_, err := NewAnalyzer(textClient(raw, nil), time.Second).Analyze(context.Background(), Request{UserID: "u", Image: validImage})

	failure := requireKind(t, err, KindAnalysisParseError)
	assert.Equal(t, raw, failure.RawResponse)

	// still visible as a redesign.Failure to shared error mapping
	var base *redesign.Failure
	require.True(t, errors.As(err, &base))
	assert.Equal(t, KindAnalysisParseError, base.Kind)
}
