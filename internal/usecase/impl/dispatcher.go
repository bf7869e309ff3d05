// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type dispatcher struct {
	registry  repository.DeviceRegistry
	gateway   service.PushGateway
	logger    *slog.Logger
	prefixLen int
}

// NewDispatcher creates the dispatcher orchestrating registry and gateway.
func NewDispatcher(
	cfg *config.Config,
	registry repository.DeviceRegistry,
	gateway service.PushGateway,
	logger *slog.Logger,
) usecase.Dispatcher {
	return &dispatcher{
		registry:  registry,
		gateway:   gateway,
		logger:    logger,
		prefixLen: cfg.Registry.TokenPrefixLength,
	}
}

// SendToDevice resolves the device's current token and delivers to it. A
// TOKEN_INVALID outcome invalidates the record before the error surfaces.
func (d *dispatcher) SendToDevice(ctx context.Context, deviceID uuid.UUID, payload entity.Payload) (usecase.SendResult, error) {
	rec, ok := d.registry.Get(ctx, deviceID)
	if !ok {
		return usecase.SendResult{}, domainerrors.ErrDeviceNotFound
	}

	messageID, err := d.gateway.SendOne(ctx, rec.Token, payload)
	if err != nil {
		kind := service.Classify(err)
		if kind == service.FailureTokenInvalid {
			d.registry.MarkInvalid(ctx, deviceID)
			d.logger.Info("Device invalidated after permanent send failure",
				slog.String("device_id", deviceID.String()),
				slog.String("token", rec.Token.Redacted()))
		}

		return usecase.SendResult{}, domainerrors.NewSendFailedError(kind, err)
	}

	d.registry.Touch(ctx, deviceID)

	return usecase.SendResult{MessageID: messageID}, nil
}

// SendToToken delivers to a caller-held token. The registry is never
// consulted or mutated: the identity behind a bare token is unknown.
func (d *dispatcher) SendToToken(ctx context.Context, token entity.Token, payload entity.Payload) (usecase.SendResult, error) {
	messageID, err := d.gateway.SendOne(ctx, token, payload)
	if err != nil {
		return usecase.SendResult{}, domainerrors.NewSendFailedError(service.Classify(err), err)
	}

	return usecase.SendResult{MessageID: messageID}, nil
}

// Broadcast fans payload out to a snapshot of the deliverable devices and
// reconciles the outcomes back into the registry. Devices registered after
// the snapshot was taken are not part of this broadcast.
func (d *dispatcher) Broadcast(ctx context.Context, payload entity.Payload) (usecase.BroadcastResult, error) {
	targets := d.registry.Snapshot(ctx)
	if len(targets) == 0 {
		return usecase.BroadcastResult{}, domainerrors.ErrNoDevicesRegistered
	}

	tokens := make([]entity.Token, len(targets))
	for i, target := range targets {
		tokens[i] = target.Token
	}

	outcomes, err := d.gateway.SendMany(ctx, tokens, payload)
	if err != nil {
		if ctx.Err() != nil {
			// The caller's deadline hit before any outcome arrived. Nothing
			// is reconciled and nothing is invented: every target is
			// pending, not failed.
			d.logger.Warn("Broadcast interrupted before outcomes arrived",
				slog.Int("targets", len(targets)))

			return d.pendingResult(targets, 0), nil
		}

		kind := service.Classify(err)
		d.logger.Error("Broadcast failed at the gateway transport",
			slog.Int("targets", len(targets)),
			slog.String("kind", string(kind)))

		return d.transportFailureResult(targets, kind), nil
	}

	switch {
	case len(outcomes) == len(targets):
		// Normal case: reconcile everything.
	case len(outcomes) < len(targets) && ctx.Err() != nil:
		// Outcomes stopped arriving when the deadline hit; reconcile what
		// we have and report the rest pending.
	default:
		// The gateway broke its alignment contract; indexing outcomes into
		// targets would reconcile the wrong devices.
		return usecase.BroadcastResult{}, domainerrors.NewSendFailedError(service.FailureUnknown,
			errors.Errorf("gateway returned %d outcomes for %d targets", len(outcomes), len(targets)))
	}

	result := usecase.BroadcastResult{TotalTargeted: len(targets)}
	for i, outcome := range outcomes {
		target := targets[i]
		if outcome.OK() {
			result.SuccessCount++
			d.registry.Touch(ctx, target.DeviceID)

			continue
		}

		result.FailureCount++
		result.Failures = append(result.Failures, usecase.TargetOutcome{
			DeviceID:    target.DeviceID,
			TokenPrefix: target.Token.Prefix(d.prefixLen),
			Status:      usecase.TargetFailed,
			Kind:        outcome.Err.Kind,
		})

		if outcome.Err.Kind == service.FailureTokenInvalid {
			d.registry.MarkInvalid(ctx, target.DeviceID)
		}
	}

	for _, target := range targets[len(outcomes):] {
		result.PendingCount++
		result.Failures = append(result.Failures, usecase.TargetOutcome{
			DeviceID:    target.DeviceID,
			TokenPrefix: target.Token.Prefix(d.prefixLen),
			Status:      usecase.TargetPending,
		})
	}

	d.logger.Info("Broadcast complete",
		slog.Int("targeted", result.TotalTargeted),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("pending", result.PendingCount))

	return result, nil
}

func (d *dispatcher) pendingResult(targets []repository.Target, reconciled int) usecase.BroadcastResult {
	result := usecase.BroadcastResult{TotalTargeted: len(targets)}
	for _, target := range targets[reconciled:] {
		result.PendingCount++
		result.Failures = append(result.Failures, usecase.TargetOutcome{
			DeviceID:    target.DeviceID,
			TokenPrefix: target.Token.Prefix(d.prefixLen),
			Status:      usecase.TargetPending,
		})
	}

	return result
}

func (d *dispatcher) transportFailureResult(targets []repository.Target, kind service.FailureKind) usecase.BroadcastResult {
	result := usecase.BroadcastResult{TotalTargeted: len(targets), FailureCount: len(targets)}
	for _, target := range targets {
		result.Failures = append(result.Failures, usecase.TargetOutcome{
			DeviceID:    target.DeviceID,
			TokenPrefix: target.Token.Prefix(d.prefixLen),
			Status:      usecase.TargetFailed,
			Kind:        kind,
		})
	}

	return result
}
