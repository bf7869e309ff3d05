package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus tracks whether a registration can currently be delivered to.
type DeviceStatus string

const (
	// StatusActive means the record's token was valid the last time we heard
	// from the push network.
	StatusActive DeviceStatus = "active"
	// StatusInvalid means the push network reported the token as permanently
	// unregistered. A fresh registration for the same identity reactivates
	// the record.
	StatusInvalid DeviceStatus = "invalid"
)

// DeviceRecord is one registration slot. DeviceID is derived
// deterministically from the caller-supplied identity, so re-registering
// with a rotated token updates the same record instead of creating a
// duplicate.
type DeviceRecord struct {
	DeviceID     uuid.UUID    `json:"device_id"`
	Identity     string       `json:"-"` // caller-supplied stable key, independent of token rotation
	Token        Token        `json:"-"` // never serialized in full
	Platform     string       `json:"platform"`
	AppVersion   string       `json:"app_version"`
	RegisteredAt time.Time    `json:"registered_at"`
	LastSeenAt   time.Time    `json:"last_seen_at"`
	Status       DeviceStatus `json:"status"`
}

// Deliverable reports whether the record should be included in a broadcast.
func (r DeviceRecord) Deliverable() bool {
	return r.Status == StatusActive && r.Token != ""
}
