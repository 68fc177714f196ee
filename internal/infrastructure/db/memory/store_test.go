package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestStore_GetSetRemove(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to report ok=false")
	}

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || val != "v" {
		t.Fatalf("unexpected value: ok=%v val=%q", ok, val)
	}

	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, _, _ = s.Get(ctx, "k")
	if val != "v2" {
		t.Fatalf("expected overwrite, got %q", val)
	}

	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	_, ok, _ = s.Get(ctx, "k")
	if ok {
		t.Fatal("expected key gone after Remove")
	}

	// Removing an absent key is not an error.
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			if err := s.Set(ctx, key, "v"); err != nil {
				t.Errorf("Set %s: %v", key, err)
			}
			if _, _, err := s.Get(ctx, key); err != nil {
				t.Errorf("Get %s: %v", key, err)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50 keys, got %d", s.Len())
	}
}
