package device

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Entry is one registered device: its immutable identity plus the driver
// handle. Name and UniqueID are registration metadata and are readable
// without invoking the driver.
type Entry struct {
	Type     Type
	Number   uint32
	Name     string
	UniqueID string
	Driver   Device
}

// Registry owns the registered device instances and their per-category
// addresses.
//
// Registration happens during startup, before the server accepts requests;
// Freeze closes the registry for mutation. After Freeze, lookups and
// enumeration are plain map/slice reads and are safe for unsynchronised
// concurrent use from request handlers.
type Registry struct {
	mu        sync.Mutex // guards registration; unused after Freeze
	frozen    bool
	byType    map[Type][]*Entry
	uniqueIDs map[string]*Entry
	logger    Logger
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{
		byType:    make(map[Type][]*Entry),
		uniqueIDs: make(map[string]*Entry),
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Register adds a driver under the given category and returns its assigned
// device number (zero-based, sequential per category).
//
// If uniqueID is empty a random one is generated; drivers that must keep a
// stable identity across process restarts supply their own. A uniqueID
// collision with any registered device is a configuration error and fails
// registration.
func (r *Registry) Register(t Type, name, uniqueID string, driver Device) (uint32, error) {
	if _, ok := ParseType(string(t)); !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if !implementsCategory(t, driver) {
		return 0, fmt.Errorf("%w: %T registered as %s", ErrWrongInterface, driver, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return 0, ErrRegistryFrozen
	}
	if uniqueID == "" {
		uniqueID = uuid.NewString()
	}
	if existing, ok := r.uniqueIDs[uniqueID]; ok {
		return 0, fmt.Errorf("%w: %q already used by %s/%d", ErrDuplicateUniqueID, uniqueID, existing.Type, existing.Number)
	}

	entry := &Entry{
		Type:     t,
		Number:   uint32(len(r.byType[t])),
		Name:     name,
		UniqueID: uniqueID,
		Driver:   driver,
	}
	r.byType[t] = append(r.byType[t], entry)
	r.uniqueIDs[uniqueID] = entry

	r.logger.Info("device registered",
		"type", string(t),
		"number", entry.Number,
		"name", name,
		"unique_id", uniqueID,
	)
	return entry.Number, nil
}

// Freeze closes the registry for mutation. Called once when startup
// completes; registration attempts afterwards fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Lookup returns the entry for a device address, or false if no such
// device is registered.
func (r *Registry) Lookup(t Type, number uint32) (*Entry, bool) {
	entries := r.byType[t]
	if int(number) >= len(entries) {
		return nil, false
	}
	return entries[number], true
}

// List enumerates all registered devices in canonical order: by category,
// then by device number.
func (r *Registry) List() []*Entry {
	var out []*Entry
	for _, t := range allTypes {
		out = append(out, r.byType[t]...)
	}
	return out
}

// Len returns the total number of registered devices.
func (r *Registry) Len() int {
	n := 0
	for _, entries := range r.byType {
		n += len(entries)
	}
	return n
}

// implementsCategory checks the driver against the capability interface of
// its declared category. The category set is closed, so this is a plain
// type switch rather than reflection.
func implementsCategory(t Type, driver Device) bool {
	switch t {
	case TypeCamera:
		_, ok := driver.(Camera)
		return ok
	case TypeCoverCalibrator:
		_, ok := driver.(CoverCalibrator)
		return ok
	case TypeDome:
		_, ok := driver.(Dome)
		return ok
	case TypeFilterWheel:
		_, ok := driver.(FilterWheel)
		return ok
	case TypeFocuser:
		_, ok := driver.(Focuser)
		return ok
	case TypeObservingConditions:
		_, ok := driver.(ObservingConditions)
		return ok
	case TypeRotator:
		_, ok := driver.(Rotator)
		return ok
	case TypeSafetyMonitor:
		_, ok := driver.(SafetyMonitor)
		return ok
	case TypeSwitch:
		_, ok := driver.(Switch)
		return ok
	case TypeTelescope:
		_, ok := driver.(Telescope)
		return ok
	default:
		return false
	}
}
