package redesign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/roomrevive/server/internal/gateway"
	"codeberg.org/roomrevive/server/internal/logger"
	"codeberg.org/roomrevive/server/internal/metrics"
	"codeberg.org/roomrevive/server/internal/prompt"
	"codeberg.org/roomrevive/server/roomrevive/credits"
)

const defaultTimeout = 90 * time.Second

type Config struct {
	// bound on the single provider call
	Timeout time.Duration
	// free tier may not use premium styles
	EnforcePremiumStyles bool
}

// runs one credit-gated redesign attempt
type Orchestrator struct {
	gate   CreditGate
	client gateway.Client
	config Config
}

func NewOrchestrator(gate CreditGate, client gateway.Client, config Config) *Orchestrator {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	return &Orchestrator{gate: gate, client: client, config: config}
}

// validates, reserves a credit, calls the gateway once and classifies the answer.
// Returns *Failure for every expected outcome; any other error is unexpected.
func (o *Orchestrator) Redesign(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContext(ctx).With("user_id", req.UserID, "style", req.Style)

	if failure := o.validate(req); failure != nil {
		o.record(failure.Kind)
		return nil, failure
	}

	instruction, err := prompt.Build(req.Style, req.Customizations)
	if err != nil {
		return nil, &Failure{Kind: KindInvalidStyle, Message: "Invalid style selected"}
	}

	failure, err := o.checkPremium(ctx, req)
	if err != nil {
		return nil, err
	}

	if failure != nil {
		o.record(failure.Kind)
		return nil, failure
	}

	reservation, err := o.gate.Reserve(ctx, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, credits.ErrCreditsExhausted):
			o.record(KindCreditsExhausted)
			return nil, &Failure{Kind: KindCreditsExhausted, Message: "You've used all your redesign credits. Upgrade your plan to continue."}
		case errors.Is(err, credits.ErrUnauthorized):
			return nil, &Failure{Kind: KindUnauthorized, Message: "Please sign in to redesign rooms"}
		default:
			return nil, fmt.Errorf("reserve credit: %w", err)
		}
	}

	log.Debug("credit reserved", "tier", reservation.Tier, "charged", reservation.Charged)

	// the generation runs to completion even if the client goes away
	detached := context.WithoutCancel(ctx)
	callCtx, cancel := context.WithTimeout(detached, o.config.Timeout)
	started := time.Now()

	resp, err := o.client.Generate(callCtx, gateway.Request{
		Prompt:     instruction,
		Image:      req.Image,
		Modalities: []gateway.Modality{gateway.ModalityImage, gateway.ModalityText},
	})

	cancel()
	metrics.ObserveProvider("redesign", started)

	if failure := Classify(resp, err); failure != nil {
		log.Warn("redesign failed", "outcome", failure.Kind, "error", err, "duration_ms", time.Since(started).Milliseconds())
		if failure.AfterReservation() {
			o.refund(detached, log, reservation)
		}
		o.record(failure.Kind)
		return nil, failure
	}

	_ = o.gate.RecordSuccess(detached, req.UserID) //nolint:errcheck // logged by the gate

	message := resp.Text
	if message == "" {
		message = defaultSuccessReason
	}

	log.Info("redesign succeeded", "duration_ms", time.Since(started).Milliseconds())
	o.record("")

	return &Result{Image: resp.Image, Message: message}, nil
}

func (o *Orchestrator) validate(req Request) *Failure {
	if failure := ValidateImage(req.Image); failure != nil {
		return failure
	}

	if req.Style == "" {
		return &Failure{Kind: KindInvalidStyle, Message: "Style is required"}
	}

	if !prompt.IsValidStyle(req.Style) {
		return &Failure{Kind: KindInvalidStyle, Message: "Invalid style selected", Details: req.Style}
	}

	if req.UserID == "" {
		return &Failure{Kind: KindUnauthorized, Message: "Please sign in to redesign rooms"}
	}

	return nil
}

func (o *Orchestrator) checkPremium(ctx context.Context, req Request) (*Failure, error) {
	if !o.config.EnforcePremiumStyles || !prompt.IsPremiumStyle(req.Style) {
		return nil, nil
	}

	balance, err := o.gate.Balance(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load balance: %w", err)
	}

	if !balance.Tier.AllowsPremiumStyles() {
		return &Failure{
			Kind:    KindPremiumStyle,
			Message: "This style is available on paid plans. Upgrade to unlock premium styles.",
			Details: req.Style,
		}, nil
	}

	return nil, nil
}

func (o *Orchestrator) refund(ctx context.Context, log *slog.Logger, r credits.Reservation) {
	if err := o.gate.Refund(ctx, r); err != nil {
		metrics.CreditRefunds.WithLabelValues("failed").Inc()
		return
	}

	if r.Charged {
		metrics.CreditRefunds.WithLabelValues("ok").Inc()
		log.Info("credit refunded")
	}
}

func (o *Orchestrator) record(kind Kind) {
	outcome := string(kind)
	if outcome == "" {
		outcome = "Succeeded"
	}

	metrics.RedesignOutcomes.WithLabelValues(outcome).Inc()
}
