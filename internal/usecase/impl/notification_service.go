package impl

import (
	"context"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	dispatcher usecase.Dispatcher
}

// NewNotificationService creates the notification facade. All the fan-out
// and reconciliation logic lives in the Dispatcher; the facade only rejects
// malformed input before anything reaches the registry or the gateway.
func NewNotificationService(dispatcher usecase.Dispatcher) usecase.NotificationUsecase {
	return &notificationService{dispatcher: dispatcher}
}

func (s *notificationService) SendToDevice(ctx context.Context, deviceID uuid.UUID, payload entity.Payload) (usecase.SendResult, error) {
	if payload.Empty() {
		return usecase.SendResult{}, domainerrors.ErrEmptyPayload
	}

	return s.dispatcher.SendToDevice(ctx, deviceID, payload)
}

func (s *notificationService) SendToToken(ctx context.Context, token entity.Token, payload entity.Payload) (usecase.SendResult, error) {
	if token == "" {
		return usecase.SendResult{}, domainerrors.ErrMissingToken
	}
	if payload.Empty() {
		return usecase.SendResult{}, domainerrors.ErrEmptyPayload
	}

	return s.dispatcher.SendToToken(ctx, token, payload)
}

func (s *notificationService) Broadcast(ctx context.Context, payload entity.Payload) (usecase.BroadcastResult, error) {
	if payload.Empty() {
		return usecase.BroadcastResult{}, domainerrors.ErrEmptyPayload
	}

	return s.dispatcher.Broadcast(ctx, payload)
}
