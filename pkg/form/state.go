package form

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownField is returned when writing a name that is not a known field.
var ErrUnknownField = errors.New("form: unknown field")

// Assignment is one pending write to the store.
type Assignment struct {
	Field string
	Value string
}

// State is the flat field store. It has a single writer at a time; callers
// that share it across goroutines must serialise access themselves.
type State struct {
	values map[string]string
}

// NewState returns a store seeded with the field defaults.
func NewState() *State {
	return &State{values: Defaults()}
}

// NewStateFrom seeds the store with defaults overridden by prefill. Unknown
// names in prefill are rejected.
func NewStateFrom(prefill map[string]string) (*State, error) {
	s := NewState()
	for name, value := range prefill {
		if err := s.Set(name, value); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Value returns the raw value of a field, empty when unknown.
func (s *State) Value(name string) string {
	if s == nil {
		return ""
	}
	return s.values[name]
}

// Set writes one field.
func (s *State) Set(name, value string) error {
	if s == nil {
		return errors.New("form: state is nil")
	}
	if _, ok := Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if s.values == nil {
		s.values = Defaults()
	}
	s.values[name] = value
	return nil
}

// Apply writes assignments in order. It stops at the first unknown field,
// leaving earlier writes in place.
func (s *State) Apply(assignments []Assignment) error {
	for _, a := range assignments {
		if err := s.Set(a.Field, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns a copy of every field value.
func (s *State) Snapshot() map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of the store.
func (s *State) Clone() *State {
	return &State{values: s.Snapshot()}
}

// Names returns the populated field names, sorted.
func (s *State) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Display returns the label shown next to a numeric control ("42px", "85%").
// It is derived from the stored value and never written back.
func (s *State) Display(name string) string {
	value := s.Value(name)
	f, ok := Lookup(name)
	if !ok {
		return value
	}
	switch f.Unit {
	case UnitPixels:
		return value + "px"
	case UnitPercent:
		return value + "%"
	case UnitRatio:
		ratio := ParseFloat(value)
		if !ratio.Valid {
			return "NaN%"
		}
		return formatFloat(math.Floor(ratio.Value*100+0.5)) + "%"
	default:
		return value
	}
}
