package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase is the thin facade over the Dispatcher: it validates
// payloads before anything reaches the registry or the gateway.
type NotificationUsecase interface {
	// SendToDevice sends payload to the device registered under deviceID.
	SendToDevice(ctx context.Context, deviceID uuid.UUID, payload entity.Payload) (SendResult, error)

	// SendToToken sends payload to a caller-held token, bypassing the
	// registry.
	SendToToken(ctx context.Context, token entity.Token, payload entity.Payload) (SendResult, error)

	// Broadcast sends payload to every deliverable device.
	Broadcast(ctx context.Context, payload entity.Payload) (BroadcastResult, error)
}
