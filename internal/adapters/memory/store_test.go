package memory

import (
	"context"
	"errors"
	"testing"

	"orbdyn/internal/ports"
	"orbdyn/internal/ports/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, NewStore())
}

func TestStore_CloseClears(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound after Close, got %v", err)
	}
}
