package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"codeberg.org/roomrevive/server/internal/gateway"
	"codeberg.org/roomrevive/server/internal/logger"
	"codeberg.org/roomrevive/server/internal/metrics"
	"codeberg.org/roomrevive/server/internal/redesign"
)

// KindAnalysisParseError extends the redesign taxonomy for this path only
const KindAnalysisParseError redesign.Kind = "AnalysisParseError"

// failure on the analysis path; RawResponse is set for parse errors
type Failure struct {
	*redesign.Failure
	RawResponse string
}

func (f *Failure) Unwrap() error {
	return f.Failure
}

// ledger-free vision call
type Analyzer struct {
	client  gateway.Client
	timeout time.Duration
}

func NewAnalyzer(client gateway.Client, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Analyzer{client: client, timeout: timeout}
}

func (a *Analyzer) Analyze(ctx context.Context, req Request) (*RoomAnalysis, error) {
	log := logger.FromContext(ctx).With("user_id", req.UserID)

	if failure := redesign.ValidateImage(req.Image); failure != nil {
		return nil, a.fail(failure, "")
	}

	if req.UserID == "" {
		return nil, a.fail(&redesign.Failure{Kind: redesign.KindUnauthorized, Message: "Please sign in to analyze rooms"}, "")
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()

	started := time.Now()
	resp, err := a.client.Generate(callCtx, gateway.Request{
		Prompt:     analysisPrompt,
		Image:      req.Image,
		Modalities: []gateway.Modality{gateway.ModalityText},
	})
	metrics.ObserveProvider("analysis", started)

	if err != nil {
		log.Warn("room analysis call failed", "error", err)
		return nil, a.fail(redesign.ClassifyError(err), "")
	}

	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return nil, a.fail(&redesign.Failure{Kind: redesign.KindProviderFailure, Message: "Failed to analyze room. Please try again."}, "")
	}

	result, err := ParseAnalysis(resp.Text)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			log.Warn("room analysis did not parse", "error", parseErr.Err)
		}

		return nil, a.fail(&redesign.Failure{
			Kind:    KindAnalysisParseError,
			Message: "Failed to parse room analysis. Please try again.",
		}, resp.Text)
	}

	log.Info("room analyzed", "room_type", result.RoomType, "duration_ms", time.Since(started).Milliseconds())
	metrics.AnalysisOutcomes.WithLabelValues("Succeeded").Inc()

	return result, nil
}

func (a *Analyzer) fail(f *redesign.Failure, raw string) *Failure {
	metrics.AnalysisOutcomes.WithLabelValues(string(f.Kind)).Inc()
	return &Failure{Failure: f, RawResponse: raw}
}
