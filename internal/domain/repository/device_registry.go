// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Metadata is the informational part of a registration. No invariants.
type Metadata struct {
	Platform   string
	AppVersion string
}

// Target pairs a device with its current delivery token, as captured by a
// registry snapshot.
type Target struct {
	DeviceID uuid.UUID
	Token    entity.Token
}

// DeviceRegistry is the store of registration records, keyed by the identity
// the caller supplies at registration time. It is the only shared mutable
// state in the core; every method is safe for concurrent use, and every
// record it hands out is a copy.
type DeviceRegistry interface {
	// Upsert creates or refreshes the record for identity. Idempotent by
	// identity: a known identity gets its token and metadata replaced, its
	// status reset to active and lastSeenAt refreshed; an unknown identity
	// gets a fresh record. Upserts for the same identity are serialized.
	Upsert(ctx context.Context, identity string, token entity.Token, meta Metadata) (entity.DeviceRecord, error)

	// Get retrieves a copy of the record for deviceID.
	Get(ctx context.Context, deviceID uuid.UUID) (entity.DeviceRecord, bool)

	// List returns copies of all records, invalid ones included, ordered by
	// registeredAt ascending with deviceID as tiebreak.
	List(ctx context.Context) []entity.DeviceRecord

	// MarkInvalid flips an active record to invalid. Unknown or
	// already-invalid deviceIDs are treated as settled: no error, no effect.
	MarkInvalid(ctx context.Context, deviceID uuid.UUID)

	// Touch refreshes lastSeenAt after a successful delivery. No-op for
	// unknown deviceIDs.
	Touch(ctx context.Context, deviceID uuid.UUID)

	// Snapshot returns the deliverable targets at a single consistent point
	// in time. Devices registered after the snapshot is taken are not part
	// of it.
	Snapshot(ctx context.Context) []Target

	// PruneInvalid removes invalid records whose lastSeenAt is older than
	// cutoff and returns how many were removed. Retention is a policy
	// decision of the caller; the registry itself never evicts on its own.
	PruneInvalid(ctx context.Context, cutoff time.Time) int
}
