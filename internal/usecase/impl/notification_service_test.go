package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_RejectsEmptyPayload(t *testing.T) {
	dispatcher := mockUsecase.NewMockDispatcher(t)
	service := NewNotificationService(dispatcher)
	ctx := context.Background()

	_, err := service.SendToDevice(ctx, uuid.New(), entity.Payload{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPayload)

	_, err = service.SendToToken(ctx, "tok-12345", entity.Payload{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPayload)

	_, err = service.Broadcast(ctx, entity.Payload{})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyPayload)

	dispatcher.AssertNotCalled(t, "SendToDevice", mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "SendToToken", mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestNotificationService_DataOnlyPayloadIsAccepted(t *testing.T) {
	dispatcher := mockUsecase.NewMockDispatcher(t)
	service := NewNotificationService(dispatcher)
	ctx := context.Background()
	payload := entity.Payload{Data: map[string]string{"action": "sync"}}

	dispatcher.EXPECT().
		Broadcast(ctx, payload).
		Return(usecase.BroadcastResult{TotalTargeted: 3, SuccessCount: 3}, nil)

	result, err := service.Broadcast(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
}

func TestNotificationService_SendToToken_RejectsMissingToken(t *testing.T) {
	dispatcher := mockUsecase.NewMockDispatcher(t)
	service := NewNotificationService(dispatcher)

	_, err := service.SendToToken(context.Background(), "", entity.Payload{Title: "Hi"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
}

func TestNotificationService_DelegatesToDispatcher(t *testing.T) {
	dispatcher := mockUsecase.NewMockDispatcher(t)
	service := NewNotificationService(dispatcher)
	ctx := context.Background()
	deviceID := uuid.New()
	payload := entity.Payload{Title: "Hi", Body: "there"}

	dispatcher.EXPECT().
		SendToDevice(ctx, deviceID, payload).
		Return(usecase.SendResult{MessageID: "m-1"}, nil)
	dispatcher.EXPECT().
		SendToToken(ctx, entity.Token("tok-12345"), payload).
		Return(usecase.SendResult{MessageID: "m-2"}, nil)

	sent, err := service.SendToDevice(ctx, deviceID, payload)
	require.NoError(t, err)
	assert.Equal(t, "m-1", sent.MessageID)

	sent, err = service.SendToToken(ctx, "tok-12345", payload)
	require.NoError(t, err)
	assert.Equal(t, "m-2", sent.MessageID)
}
