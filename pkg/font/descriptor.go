package font

import "strings"

// Separator splits a descriptor into family and modifier.
const Separator = ":"

// DefaultWeight is used when a descriptor carries no modifier.
const DefaultWeight Weight = "400"

// Weight holds the modifier half of a descriptor. It is either a numeric
// weight ("300", "700") or a style keyword ("italic"); both share the same
// slot and are forwarded to the server untouched.
type Weight string

// IsNumeric reports whether the modifier is a numeric weight.
func (w Weight) IsNumeric() bool {
	if w == "" {
		return false
	}
	for _, r := range string(w) {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsStyle reports whether the modifier is a style keyword rather than a
// numeric weight. Callers can use it to flag descriptors such as
// "Open Sans:italic"; parsing and encoding treat both kinds the same way.
func (w Weight) IsStyle() bool {
	return w != "" && !w.IsNumeric()
}

// Descriptor is the parsed form of "Family:Weight".
type Descriptor struct {
	Family string
	Weight Weight
}

// Parse splits raw on Separator: the first segment is the family and the
// second, when present, the modifier. A missing modifier defaults to
// DefaultWeight. Segments past the second are ignored and nothing is
// trimmed or validated.
func Parse(raw string) Descriptor {
	parts := strings.Split(raw, Separator)
	if len(parts) < 2 {
		return Descriptor{Family: parts[0], Weight: DefaultWeight}
	}
	return Descriptor{Family: parts[0], Weight: Weight(parts[1])}
}

// String encodes the descriptor the way the rendering API expects it: the
// bare family for the default weight, "Family:Weight" otherwise.
func (d Descriptor) String() string {
	return Encode(d.Family, d.Weight)
}

// Encode joins family and weight, omitting DefaultWeight.
func Encode(family string, weight Weight) string {
	if weight == DefaultWeight {
		return family
	}
	return family + Separator + string(weight)
}
