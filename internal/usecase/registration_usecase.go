// Package usecase defines the application's public operation interfaces.
package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// RegistrationInput carries a device registration request.
type RegistrationInput struct {
	// Token is the delivery token issued by the push transport.
	Token string `json:"token"`
	// InstallationID is the caller-supplied stable identity for this
	// registration slot. It must stay constant across token rotations.
	InstallationID string `json:"installation_id"`
	Platform       string `json:"platform"`
	AppVersion     string `json:"app_version"`
}

// DeviceSummary is the listable view of a registration. It exposes only a
// fixed-length token prefix, never the full token.
type DeviceSummary struct {
	DeviceID     uuid.UUID           `json:"device_id"`
	Platform     string              `json:"platform"`
	AppVersion   string              `json:"app_version"`
	RegisteredAt time.Time           `json:"registered_at"`
	LastSeenAt   time.Time           `json:"last_seen_at"`
	Status       entity.DeviceStatus `json:"status"`
	TokenPrefix  string              `json:"token_prefix"`
}

// RegistrationUsecase manages the device-registration lifecycle.
type RegistrationUsecase interface {
	// Register validates the input and upserts the registration. A fresh or
	// rotated token reactivates an invalid record for the same identity.
	Register(ctx context.Context, input RegistrationInput) (entity.DeviceRecord, error)

	// ListDevices returns summaries of every registration, invalid ones
	// included, ordered by registration time ascending.
	ListDevices(ctx context.Context) ([]DeviceSummary, error)
}
