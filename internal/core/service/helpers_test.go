package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// stubStore is a map-backed KeyValueStore for tests.
type stubStore struct {
	data map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string]string)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// seed marshals v directly under key, bypassing the services.
func (s *stubStore) seed(t *testing.T, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
	s.data[key] = string(raw)
}

// stubRand replays scripted values. When a script runs out it keeps returning
// the last value.
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi]
	if r.fi < len(r.floats)-1 {
		r.fi++
	}
	return v
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii]
	if r.ii < len(r.ints)-1 {
		r.ii++
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// checkSpotInvariant asserts that reserved spots, and only reserved spots,
// carry a holder.
func checkSpotInvariant(t *testing.T, spots []domain.Spot) {
	t.Helper()
	for _, s := range spots {
		if !s.Consistent() {
			t.Fatalf("spot %s violates reservation invariant: status=%s reservedBy=%v", s.ID, s.Status, s.ReservedBy)
		}
	}
}
