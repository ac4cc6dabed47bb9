package device

import (
	"context"
	"errors"
	"testing"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// testCamera is a minimal camera driver for registry tests.
type testCamera struct {
	UnimplementedCamera
}

func (testCamera) Connected(context.Context) (bool, error) { return false, nil }

// testTelescope is a minimal telescope driver for registry tests.
type testTelescope struct {
	UnimplementedTelescope
}

func TestRegisterAssignsSequentialNumbersPerType(t *testing.T) {
	r := NewRegistry()

	n0, err := r.Register(TypeCamera, "Cam A", "cam-a", testCamera{})
	if err != nil {
		t.Fatalf("register first camera: %v", err)
	}
	n1, err := r.Register(TypeCamera, "Cam B", "cam-b", testCamera{})
	if err != nil {
		t.Fatalf("register second camera: %v", err)
	}
	scope, err := r.Register(TypeTelescope, "Scope", "scope-a", testTelescope{})
	if err != nil {
		t.Fatalf("register telescope: %v", err)
	}

	if n0 != 0 || n1 != 1 {
		t.Errorf("camera numbers = %d, %d, want 0, 1", n0, n1)
	}
	if scope != 0 {
		t.Errorf("telescope numbering should start at 0 independently, got %d", scope)
	}
}

func TestRegisterRejectsDuplicateUniqueID(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Register(TypeCamera, "Cam A", "shared-id", testCamera{}); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// Collisions are global, not per-type.
	_, err := r.Register(TypeTelescope, "Scope", "shared-id", testTelescope{})
	if !errors.Is(err, ErrDuplicateUniqueID) {
		t.Errorf("expected ErrDuplicateUniqueID, got %v", err)
	}
}

func TestRegisterGeneratesUniqueIDWhenEmpty(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Register(TypeCamera, "Cam A", "", testCamera{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := r.Register(TypeCamera, "Cam B", "", testCamera{}); err != nil {
		t.Fatalf("register with second generated ID: %v", err)
	}

	entries := r.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UniqueID == "" || entries[0].UniqueID == entries[1].UniqueID {
		t.Errorf("generated IDs not unique: %q vs %q", entries[0].UniqueID, entries[1].UniqueID)
	}
}

func TestRegisterRejectsWrongInterface(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register(TypeTelescope, "Not a scope", "x", testCamera{})
	if !errors.Is(err, ErrWrongInterface) {
		t.Errorf("expected ErrWrongInterface, got %v", err)
	}
}

func TestRegisterRejectsUnknownType(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register(Type("teapot"), "Teapot", "x", testCamera{})
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestFreezeClosesRegistration(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(TypeCamera, "Cam", "cam", testCamera{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	r.Freeze()

	if _, err := r.Register(TypeCamera, "Late", "late", testCamera{}); !errors.Is(err, ErrRegistryFrozen) {
		t.Errorf("expected ErrRegistryFrozen, got %v", err)
	}
	// Lookups still work after freezing.
	if _, ok := r.Lookup(TypeCamera, 0); !ok {
		t.Error("Lookup failed after Freeze")
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(TypeCamera, "Cam", "cam", testCamera{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name   string
		typ    Type
		number uint32
		wantOK bool
	}{
		{"registered device", TypeCamera, 0, true},
		{"number out of range", TypeCamera, 1, false},
		{"empty category", TypeDome, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := r.Lookup(tt.typ, tt.number)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%s, %d) ok = %v, want %v", tt.typ, tt.number, ok, tt.wantOK)
			}
			if ok && entry.Name != "Cam" {
				t.Errorf("entry name = %q, want Cam", entry.Name)
			}
		})
	}
}

func TestListOrder(t *testing.T) {
	r := NewRegistry()
	// Register out of canonical order.
	mustRegister(t, r, TypeTelescope, "Scope", "s0", testTelescope{})
	mustRegister(t, r, TypeCamera, "Cam A", "c0", testCamera{})
	mustRegister(t, r, TypeCamera, "Cam B", "c1", testCamera{})

	entries := r.List()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Canonical order: cameras before telescopes, numbers ascending.
	if entries[0].UniqueID != "c0" || entries[1].UniqueID != "c1" || entries[2].UniqueID != "s0" {
		t.Errorf("unexpected order: %q, %q, %q", entries[0].UniqueID, entries[1].UniqueID, entries[2].UniqueID)
	}
}

func TestUnimplementedDefaults(t *testing.T) {
	ctx := context.Background()
	cam := UnimplementedCamera{}

	if can, err := cam.CanAbortExposure(ctx); err != nil || can {
		t.Errorf("CanAbortExposure = (%v, %v), want (false, nil)", can, err)
	}
	if _, err := cam.Gain(ctx); !errors.Is(err, ascom.ErrNotImplemented) {
		t.Errorf("Gain error = %v, want NotImplemented", err)
	}
	if v, err := cam.InterfaceVersion(ctx); err != nil || v != defaultInterfaceVersion {
		t.Errorf("InterfaceVersion = (%d, %v), want (%d, nil)", v, err, defaultInterfaceVersion)
	}
	if actions, err := cam.SupportedActions(ctx); err != nil || len(actions) != 0 {
		t.Errorf("SupportedActions = (%v, %v), want empty list", actions, err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in     string
		want   Type
		wantOK bool
	}{
		{"camera", TypeCamera, true},
		{"Camera", TypeCamera, true},
		{"FILTERWHEEL", TypeFilterWheel, true},
		{"teapot", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseType(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func mustRegister(t *testing.T, r *Registry, typ Type, name, id string, d Device) {
	t.Helper()
	if _, err := r.Register(typ, name, id, d); err != nil {
		t.Fatalf("register %s %q: %v", typ, name, err)
	}
}
