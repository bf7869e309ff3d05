package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// PostRegistrationHook runs after a device registration has been persisted.
// The registration itself never fails because a hook failed, but hook errors
// are surfaced to the caller of the hook for logging or retry, never
// swallowed.
type PostRegistrationHook interface {
	AfterRegister(ctx context.Context, record entity.DeviceRecord) error
}
