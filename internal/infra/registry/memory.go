// Package registry provides the in-memory device registry.
package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"

	"github.com/google/uuid"
)

// deviceNamespace seeds deterministic deviceID derivation. Fixed so that the
// same identity always maps to the same deviceID across restarts.
var deviceNamespace = uuid.MustParse("f3c9d2be-41a7-4f6b-9a10-7d2e8c5b0a44")

// DeviceIDFor derives the stable deviceID for a caller-supplied identity.
// Identities are never derived from delivery tokens, since tokens rotate.
func DeviceIDFor(identity string) uuid.UUID {
	return uuid.NewSHA1(deviceNamespace, []byte(identity))
}

// Memory is the reference DeviceRegistry: a single map guarded by one
// RWMutex. List and Snapshot take the read lock for a full pass, so readers
// briefly block writers; with registry sizes bounded by one record per
// install that tradeoff keeps every operation trivially consistent.
type Memory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.DeviceRecord
	byToken map[entity.Token]uuid.UUID
	clock   func() time.Time
}

// Option customizes a Memory registry.
type Option func(*Memory)

// WithClock replaces the time source. Tests use this to pin timestamps.
func WithClock(clock func() time.Time) Option {
	return func(m *Memory) {
		m.clock = clock
	}
}

// NewMemory creates an empty in-memory registry.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		records: make(map[uuid.UUID]*entity.DeviceRecord),
		byToken: make(map[entity.Token]uuid.UUID),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

var _ repository.DeviceRegistry = (*Memory)(nil)

// Upsert creates or refreshes the record for identity. When the supplied
// token is currently held by a different identity, that earlier record is
// marked invalid: the push network delivers a token to exactly one install,
// so the last writer wins.
func (m *Memory) Upsert(ctx context.Context, identity string, token entity.Token, meta repository.Metadata) (entity.DeviceRecord, error) {
	now := m.clock()
	id := DeviceIDFor(identity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if holderID, ok := m.byToken[token]; ok && holderID != id {
		if holder, ok := m.records[holderID]; ok && holder.Status == entity.StatusActive {
			holder.Status = entity.StatusInvalid
		}
	}

	rec, ok := m.records[id]
	if !ok {
		rec = &entity.DeviceRecord{
			DeviceID:     id,
			Identity:     identity,
			RegisteredAt: now,
		}
		m.records[id] = rec
	} else {
		delete(m.byToken, rec.Token)
	}

	rec.Token = token
	rec.Platform = meta.Platform
	rec.AppVersion = meta.AppVersion
	rec.Status = entity.StatusActive
	rec.LastSeenAt = now
	m.byToken[token] = id

	return *rec, nil
}

// Get retrieves a copy of the record for deviceID.
func (m *Memory) Get(ctx context.Context, deviceID uuid.UUID) (entity.DeviceRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[deviceID]
	if !ok {
		return entity.DeviceRecord{}, false
	}

	return *rec, true
}

// List returns copies of all records ordered by registeredAt ascending,
// deviceID ascending as tiebreak. Invalid records stay listable for
// observability until pruned or reclaimed by a fresh registration.
func (m *Memory) List(ctx context.Context) []entity.DeviceRecord {
	m.mu.RLock()
	out := make([]entity.DeviceRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, *rec)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].RegisteredAt.Before(out[j].RegisteredAt)
		}

		return out[i].DeviceID.String() < out[j].DeviceID.String()
	})

	return out
}

// MarkInvalid flips an active record to invalid. Unknown or already-invalid
// deviceIDs are already settled, so this never errors.
func (m *Memory) MarkInvalid(ctx context.Context, deviceID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[deviceID]; ok && rec.Status == entity.StatusActive {
		rec.Status = entity.StatusInvalid
	}
}

// Touch refreshes lastSeenAt after a successful delivery.
func (m *Memory) Touch(ctx context.Context, deviceID uuid.UUID) {
	now := m.clock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[deviceID]; ok {
		rec.LastSeenAt = now
	}
}

// Snapshot returns the deliverable targets under one lock acquisition, so
// the result reflects a single consistent point in time.
func (m *Memory) Snapshot(ctx context.Context) []repository.Target {
	m.mu.RLock()
	defer m.mu.RUnlock()

	targets := make([]repository.Target, 0, len(m.records))
	for _, rec := range m.records {
		if rec.Deliverable() {
			targets = append(targets, repository.Target{DeviceID: rec.DeviceID, Token: rec.Token})
		}
	}

	return targets
}

// PruneInvalid removes invalid records whose lastSeenAt is older than cutoff.
func (m *Memory) PruneInvalid(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, rec := range m.records {
		if rec.Status != entity.StatusInvalid || !rec.LastSeenAt.Before(cutoff) {
			continue
		}
		if holder, ok := m.byToken[rec.Token]; ok && holder == id {
			delete(m.byToken, rec.Token)
		}
		delete(m.records, id)
		removed++
	}

	return removed
}

// Len reports the number of records, invalid ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}
