package ascom

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := NewInvalidValue("Gain %d out of range", 900)

	if !errors.Is(err, ErrInvalidValue) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, ErrNotConnected) {
		t.Error("did not expect match against a different code")
	}
}

func TestErrorIsThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("calling device: %w", ErrNotConnected)

	if !errors.Is(wrapped, ErrNotConnected) {
		t.Error("expected match through fmt.Errorf wrapping")
	}
}

func TestNewErrorClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		number int32
		want   int32
	}{
		{"below range", 0x100, CodeUnspecified},
		{"above range", 0x1000, CodeUnspecified},
		{"in range", 0x407, 0x407},
		{"driver range", 0x600, 0x600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewError(tt.number, "x").Number; got != tt.want {
				t.Errorf("NewError(%#x).Number = %#x, want %#x", tt.number, got, tt.want)
			}
		})
	}
}

func TestDriverError(t *testing.T) {
	if got := DriverError(0, "port failure").Number; got != 0x500 {
		t.Errorf("DriverError(0).Number = %#x, want 0x500", got)
	}
	if got := DriverError(0xAFF, "last valid").Number; got != 0xFFF {
		t.Errorf("DriverError(0xAFF).Number = %#x, want 0xFFF", got)
	}
	if got := DriverError(0xB00, "too large").Number; got != CodeUnspecified {
		t.Errorf("DriverError(0xB00).Number = %#x, want unspecified", got)
	}
}

func TestAsError(t *testing.T) {
	if AsError(nil) != nil {
		t.Error("AsError(nil) should be nil")
	}

	plain := errors.New("disk on fire")
	converted := AsError(plain)
	if converted.Number != CodeUnspecified {
		t.Errorf("foreign error converted to %#x, want unspecified", converted.Number)
	}
	if converted.Message != "disk on fire" {
		t.Errorf("message not preserved: %q", converted.Message)
	}

	passthrough := AsError(ErrValueNotSet)
	if passthrough != ErrValueNotSet {
		t.Error("*Error values should pass through unchanged")
	}
}
