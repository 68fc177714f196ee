package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/aeropark/parking-system/internal/core/ports"
)

// Storage keys. One key per collection; values are whole JSON documents.
// The names only need to stay distinct, they are not a wire contract.
const (
	keySpots        = "aeropark:spots"
	keyReservations = "aeropark:reservations"
	keyUsers        = "aeropark:users"
	keyPayments     = "aeropark:payments"
	keyAdmins       = "aeropark:admins"
	keyAdminSession = "aeropark:admin_session"
	keySettings     = "aeropark:settings"
)

// loadCollection reads and decodes a whole collection. An absent key yields
// an empty slice, not an error.
func loadCollection[T any](ctx context.Context, store ports.KeyValueStore, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// saveCollection serialises and writes a whole collection, replacing
// whatever was stored before.
func saveCollection[T any](ctx context.Context, store ports.KeyValueStore, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// loadRecord reads a single-record key (session, settings).
func loadRecord[T any](ctx context.Context, store ports.KeyValueStore, key string) (T, bool, error) {
	var rec T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return rec, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return rec, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return rec, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return rec, true, nil
}

func saveRecord[T any](ctx context.Context, store ports.KeyValueStore, key string, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

var lastEntryID atomic.Int64

// newEntryID returns a time-derived id that is strictly increasing within
// the process, so concurrent appends never collide.
func newEntryID() string {
	now := time.Now().UnixNano()
	for {
		last := lastEntryID.Load()
		if now <= last {
			now = last + 1
		}
		if lastEntryID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
