package mem_test

import (
	"testing"

	"github.com/momentics/zbuf/mem"
)

func TestReserveReturnsZeroedSpan(t *testing.T) {
	span := mem.Reserve(4096)
	if len(span) != 4096 {
		t.Fatalf("expected 4096 bytes, got %d", len(span))
	}
	for i, b := range span {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, b)
		}
	}
	// The span must be writable.
	span[0] = 0xFF
	span[4095] = 0xFF
}

func TestReserveNonPositive(t *testing.T) {
	if span := mem.Reserve(0); span != nil {
		t.Errorf("Reserve(0) should return nil, got %d bytes", len(span))
	}
	if span := mem.Reserve(-1); span != nil {
		t.Error("Reserve(-1) should return nil")
	}
}
