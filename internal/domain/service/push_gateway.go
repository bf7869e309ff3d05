// Package service defines interfaces for external collaborators.
package service

import (
	"context"
	"fmt"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// FailureKind classifies a push-gateway failure. Permanent kinds mean the
// token will never succeed again; transient ones may succeed on retry.
type FailureKind string

const (
	// FailureTokenInvalid means the token is no longer registered with the
	// push network. Permanent: the device record must be invalidated.
	FailureTokenInvalid FailureKind = "TOKEN_INVALID"
	// FailureTransient covers network and quota errors. Retryable.
	FailureTransient FailureKind = "TRANSIENT"
	// FailurePayloadRejected means the gateway refused the payload itself.
	FailurePayloadRejected FailureKind = "PAYLOAD_REJECTED"
	// FailureUnknown is the explicit catch-all; a gateway error is never
	// left unclassified.
	FailureUnknown FailureKind = "UNKNOWN"
)

// Permanent reports whether retrying with the same token and payload is
// pointless.
func (k FailureKind) Permanent() bool {
	return k == FailureTokenInvalid || k == FailurePayloadRejected
}

// SendError is a classified push-gateway failure.
type SendError struct {
	Kind      FailureKind
	Retryable bool
	Cause     error
}

func (e *SendError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("push send failed (%s)", e.Kind)
	}

	return fmt.Sprintf("push send failed (%s): %v", e.Kind, e.Cause)
}

func (e *SendError) Unwrap() error {
	return e.Cause
}

// NewSendError builds a SendError with Retryable derived from the kind.
func NewSendError(kind FailureKind, cause error) *SendError {
	return &SendError{Kind: kind, Retryable: kind == FailureTransient, Cause: cause}
}

// Classify extracts the failure kind from err, falling back to
// FailureUnknown for anything a gateway failed to classify.
func Classify(err error) FailureKind {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Kind
	}

	return FailureUnknown
}

// SendOutcome is the per-token result of a fan-out send. Exactly one of
// MessageID and Err is set.
type SendOutcome struct {
	MessageID string
	Err       *SendError
}

// OK reports whether the send reached the push network.
func (o SendOutcome) OK() bool {
	return o.Err == nil
}

// PushGateway is the upstream push transport, treated as a black box. Errors
// it returns are always *SendError.
type PushGateway interface {
	// SendOne delivers payload to a single token and returns the gateway
	// message ID.
	SendOne(ctx context.Context, token entity.Token, payload entity.Payload) (string, error)

	// SendMany delivers payload to every token. On success the returned
	// outcomes align by index with the input tokens. A non-nil error means
	// the whole batch failed before any per-token outcome was produced.
	// If ctx is cancelled mid fan-out the gateway may return fewer outcomes
	// than tokens, aligned from the front; it never invents outcomes for
	// sends it did not perform.
	SendMany(ctx context.Context, tokens []entity.Token, payload entity.Payload) ([]SendOutcome, error)
}
