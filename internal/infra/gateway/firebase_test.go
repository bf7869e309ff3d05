package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sendFunc      func(ctx context.Context, msg *messaging.Message) (string, error)
	multicastFunc func(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

func (f *fakeMessagingClient) Send(ctx context.Context, msg *messaging.Message) (string, error) {
	return f.sendFunc(ctx, msg)
}

func (f *fakeMessagingClient) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	return f.multicastFunc(ctx, msg)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFCMGateway_SendOne_Success(t *testing.T) {
	client := &fakeMessagingClient{
		sendFunc: func(_ context.Context, msg *messaging.Message) (string, error) {
			assert.Equal(t, "tokA", msg.Token)
			assert.Equal(t, "Hi", msg.Notification.Title)

			return "projects/p/messages/1", nil
		},
	}
	g := NewWithClient(client, testLogger())

	messageID, err := g.SendOne(context.Background(), "tokA", entity.Payload{Title: "Hi", Body: "there"})
	require.NoError(t, err)
	assert.Equal(t, "projects/p/messages/1", messageID)
}

func TestFCMGateway_SendOne_UnclassifiedErrorIsUnknown(t *testing.T) {
	client := &fakeMessagingClient{
		sendFunc: func(context.Context, *messaging.Message) (string, error) {
			return "", errors.New("boom")
		},
	}
	g := NewWithClient(client, testLogger())

	_, err := g.SendOne(context.Background(), "tokA", entity.Payload{Title: "Hi"})
	require.Error(t, err)

	var sendErr *service.SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, service.FailureUnknown, sendErr.Kind)
	assert.False(t, sendErr.Retryable)
}

func TestFCMGateway_SendMany_OutcomesAlignWithTokens(t *testing.T) {
	client := &fakeMessagingClient{
		multicastFunc: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			require.Equal(t, []string{"tokA", "tokB"}, msg.Tokens)

			return &messaging.BatchResponse{
				SuccessCount: 1,
				FailureCount: 1,
				Responses: []*messaging.SendResponse{
					{Success: true, MessageID: "m-1"},
					{Success: false, Error: errors.New("boom")},
				},
			}, nil
		},
	}
	g := NewWithClient(client, testLogger())

	outcomes, err := g.SendMany(context.Background(), []entity.Token{"tokA", "tokB"}, entity.Payload{Title: "Hi"})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].OK())
	assert.Equal(t, "m-1", outcomes[0].MessageID)
	assert.False(t, outcomes[1].OK())
	assert.Equal(t, service.FailureUnknown, outcomes[1].Err.Kind)
}

func TestFCMGateway_SendMany_MisalignedResponseRejected(t *testing.T) {
	client := &fakeMessagingClient{
		multicastFunc: func(context.Context, *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			return &messaging.BatchResponse{Responses: []*messaging.SendResponse{{Success: true, MessageID: "m-1"}}}, nil
		},
	}
	g := NewWithClient(client, testLogger())

	_, err := g.SendMany(context.Background(), []entity.Token{"tokA", "tokB"}, entity.Payload{Title: "Hi"})
	require.Error(t, err)

	var sendErr *service.SendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, service.FailureUnknown, sendErr.Kind)
}

func TestFCMGateway_SendMany_EmptyInput(t *testing.T) {
	g := NewWithClient(&fakeMessagingClient{
		multicastFunc: func(context.Context, *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			t.Fatal("gateway must not be called with zero tokens")

			return nil, nil
		},
	}, testLogger())

	outcomes, err := g.SendMany(context.Background(), nil, entity.Payload{Title: "Hi"})
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func manyTokens(n int) []entity.Token {
	tokens := make([]entity.Token, n)
	for i := range tokens {
		tokens[i] = entity.Token(fmt.Sprintf("tok-%03d", i))
	}

	return tokens
}

func successBatch(n int) *messaging.BatchResponse {
	responses := make([]*messaging.SendResponse, n)
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true, MessageID: fmt.Sprintf("m-%03d", i)}
	}

	return &messaging.BatchResponse{Responses: responses, SuccessCount: n}
}

func TestFCMGateway_SendMany_CancelledMidBatchReturnsShort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	client := &fakeMessagingClient{
		multicastFunc: func(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			calls++
			if calls == 1 {
				// First batch of 500 completes, then the caller walks away.
				cancel()

				return successBatch(len(msg.Tokens)), nil
			}

			return nil, ctx.Err()
		},
	}
	g := NewWithClient(client, testLogger())

	outcomes, err := g.SendMany(ctx, manyTokens(600), entity.Payload{Title: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, outcomes, 500, "only outcomes that actually arrived are returned")
	for _, outcome := range outcomes {
		assert.True(t, outcome.OK())
	}
}

func TestFCMGateway_SendMany_CrossBatchTransportFailurePadsFailed(t *testing.T) {
	calls := 0
	client := &fakeMessagingClient{
		multicastFunc: func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			calls++
			if calls == 1 {
				return successBatch(len(msg.Tokens)), nil
			}

			return nil, errors.New("connection reset")
		},
	}
	g := NewWithClient(client, testLogger())

	outcomes, err := g.SendMany(context.Background(), manyTokens(600), entity.Payload{Title: "Hi"})
	require.NoError(t, err, "partial delivery is reported per outcome, not as an overall error")
	require.Len(t, outcomes, 600)

	failed := 0
	for _, outcome := range outcomes {
		if !outcome.OK() {
			failed++
		}
	}
	assert.Equal(t, 100, failed)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[599].OK())
}

func TestInvalidArgumentKind_SeparatesTokenFromPayload(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want service.FailureKind
	}{
		{
			name: "bad token",
			err:  errors.New("The registration token is not a valid FCM registration token"),
			want: service.FailureTokenInvalid,
		},
		{
			name: "oversized payload",
			err:  errors.New("Message payload exceeds the 4096 byte limit"),
			want: service.FailurePayloadRejected,
		},
		{
			name: "bad data key",
			err:  errors.New(`Data key "from" is a reserved keyword`),
			want: service.FailurePayloadRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invalidArgumentKind(tt.err))
		})
	}
}

func TestFCMGateway_SendMany_TransportFailure(t *testing.T) {
	client := &fakeMessagingClient{
		multicastFunc: func(context.Context, *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			return nil, errors.New("connection reset")
		},
	}
	g := NewWithClient(client, testLogger())

	outcomes, err := g.SendMany(context.Background(), []entity.Token{"tokA"}, entity.Payload{Title: "Hi"})
	require.Error(t, err)
	assert.Nil(t, outcomes)
}
