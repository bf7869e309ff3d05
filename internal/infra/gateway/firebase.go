// Package gateway implements the push-gateway collaborator on Firebase
// Cloud Messaging.
package gateway

import (
	"context"
	"log/slog"
	"strings"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// fcmBatchSize is the FCM limit on tokens per multicast request.
const fcmBatchSize = 500

// MessagingClient is the subset of the Firebase messaging API the gateway
// uses. *messaging.Client satisfies it; tests substitute a fake.
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmGateway struct {
	client MessagingClient
	logger *slog.Logger
}

// NewFirebaseGateway builds a PushGateway from injected credentials. The
// resulting value is constructed once at process start and passed by
// reference; there is no process-wide SDK singleton.
func NewFirebaseGateway(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushGateway, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an existing messaging client.
func NewWithClient(client MessagingClient, logger *slog.Logger) service.PushGateway {
	return &fcmGateway{
		client: client,
		logger: logger.With(slog.String("component", "fcm_gateway")),
	}
}

// SendOne delivers payload to a single token.
func (g *fcmGateway) SendOne(ctx context.Context, token entity.Token, payload entity.Payload) (string, error) {
	msg := &messaging.Message{
		Token:        string(token),
		Notification: notificationFor(payload),
		Data:         payload.Data,
		Android:      androidConfig(payload),
	}

	messageID, err := g.client.Send(ctx, msg)
	if err != nil {
		sendErr := classify(err)
		g.logger.Warn("FCM send failed",
			slog.String("token", token.Redacted()),
			slog.String("kind", string(sendErr.Kind)))

		return "", sendErr
	}

	return messageID, nil
}

// SendMany delivers payload to every token via multicast. Outcomes align by
// index with the input tokens; a non-nil error means the whole batch failed
// at the transport level before per-token outcomes existed. When the context
// is cancelled mid fan-out the returned slice is shorter than the input:
// it holds only the outcomes that arrived, still index-aligned from the
// front, and never fabricated results for the unsent remainder.
func (g *fcmGateway) SendMany(ctx context.Context, tokens []entity.Token, payload entity.Payload) ([]service.SendOutcome, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	outcomes := make([]service.SendOutcome, 0, len(tokens))
	for start := 0; start < len(tokens); start += fcmBatchSize {
		end := start + fcmBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		batch, err := g.sendBatch(ctx, tokens[start:end], payload)
		if err != nil {
			if ctx.Err() != nil {
				// The caller's deadline hit mid fan-out. Return only the
				// outcomes that actually arrived; the unsent remainder is
				// the caller's to report as pending, not a failure.
				return outcomes, nil
			}

			if len(outcomes) > 0 {
				// Earlier batches already produced outcomes; report the rest
				// as failed instead of discarding what was delivered.
				for range tokens[start:] {
					outcomes = append(outcomes, service.SendOutcome{Err: classify(err)})
				}

				return outcomes, nil
			}

			return nil, err
		}
		outcomes = append(outcomes, batch...)
	}

	return outcomes, nil
}

func (g *fcmGateway) sendBatch(ctx context.Context, tokens []entity.Token, payload entity.Payload) ([]service.SendOutcome, error) {
	raw := make([]string, len(tokens))
	for i, token := range tokens {
		raw[i] = string(token)
	}

	msg := &messaging.MulticastMessage{
		Tokens:       raw,
		Notification: notificationFor(payload),
		Data:         payload.Data,
		Android:      androidConfig(payload),
	}

	resp, err := g.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Responses) != len(tokens) {
		return nil, service.NewSendError(service.FailureUnknown,
			errors.Errorf("multicast returned %d responses for %d tokens", len(resp.Responses), len(tokens)))
	}

	outcomes := make([]service.SendOutcome, len(tokens))
	for i, sendResp := range resp.Responses {
		if sendResp.Error != nil {
			outcomes[i] = service.SendOutcome{Err: classify(sendResp.Error)}

			continue
		}
		outcomes[i] = service.SendOutcome{MessageID: sendResp.MessageID}
	}

	g.logger.Debug("FCM multicast complete",
		slog.Int("success", resp.SuccessCount),
		slog.Int("failure", resp.FailureCount))

	return outcomes, nil
}

func notificationFor(payload entity.Payload) *messaging.Notification {
	return &messaging.Notification{
		Title: payload.Title,
		Body:  payload.Body,
	}
}

func androidConfig(payload entity.Payload) *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: "high",
		Notification: &messaging.AndroidNotification{
			Title:     payload.Title,
			Body:      payload.Body,
			Sound:     "default",
			ChannelID: "default_notification_channel_id",
		},
	}
}

// classify maps an FCM error onto the gateway failure taxonomy. Unavailable,
// quota and internal are worth retrying; everything else unmatched is the
// UNKNOWN catch-all.
func classify(err error) *service.SendError {
	switch {
	case messaging.IsRegistrationTokenNotRegistered(err):
		return service.NewSendError(service.FailureTokenInvalid, err)
	case messaging.IsInvalidArgument(err):
		return service.NewSendError(invalidArgumentKind(err), err)
	case messaging.IsUnavailable(err), messaging.IsQuotaExceeded(err), messaging.IsInternal(err):
		return service.NewSendError(service.FailureTransient, err)
	default:
		return service.NewSendError(service.FailureUnknown, err)
	}
}

// invalidArgumentKind separates a garbage token from a rejected payload. FCM
// reports both as INVALID_ARGUMENT and only the detail message names the
// registration token; a payload problem must fail the send without
// invalidating the targeted devices.
func invalidArgumentKind(err error) service.FailureKind {
	if strings.Contains(strings.ToLower(err.Error()), "registration token") {
		return service.FailureTokenInvalid
	}

	return service.FailurePayloadRejected
}
