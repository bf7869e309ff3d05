package usecase

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
)

// SendResult is the outcome of a single-target send.
type SendResult struct {
	MessageID string `json:"message_id"`
}

// TargetStatus is the per-target outcome of a broadcast.
type TargetStatus string

const (
	// TargetDelivered means the gateway accepted the message.
	TargetDelivered TargetStatus = "delivered"
	// TargetFailed means the gateway reported a classified failure.
	TargetFailed TargetStatus = "failed"
	// TargetPending means no outcome arrived before the caller's deadline.
	// Pending is not a failure: the message may still have been delivered.
	TargetPending TargetStatus = "pending"
)

// TargetOutcome describes what happened to one broadcast target. The token
// appears only as a prefix.
type TargetOutcome struct {
	DeviceID    uuid.UUID           `json:"device_id"`
	TokenPrefix string              `json:"token_prefix"`
	Status      TargetStatus        `json:"status"`
	Kind        service.FailureKind `json:"kind,omitempty"`
}

// BroadcastResult aggregates a fan-out. Partial per-target failure lives
// here, never in an overall error.
type BroadcastResult struct {
	TotalTargeted int             `json:"total_targeted"`
	SuccessCount  int             `json:"success_count"`
	FailureCount  int             `json:"failure_count"`
	PendingCount  int             `json:"pending_count"`
	Failures      []TargetOutcome `json:"failures,omitempty"`
}

// Dispatcher orchestrates sends over the registry and the push gateway and
// reconciles gateway outcomes back into registry state.
type Dispatcher interface {
	// SendToDevice resolves the device's current token and sends to it. A
	// permanently invalid token marks the record invalid before the error
	// is surfaced, so the failure is both reported and recorded.
	SendToDevice(ctx context.Context, deviceID uuid.UUID, payload entity.Payload) (SendResult, error)

	// SendToToken sends to a bare token without consulting or mutating the
	// registry; the device identity behind the token is unknown.
	SendToToken(ctx context.Context, token entity.Token, payload entity.Payload) (SendResult, error)

	// Broadcast fans payload out to a snapshot of the deliverable devices.
	// It fails only when the snapshot is empty; everything else is
	// accounted per target in the result.
	Broadcast(ctx context.Context, payload entity.Payload) (BroadcastResult, error)
}
