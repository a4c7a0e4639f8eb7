package form

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-overlaygen/pkg/payload"
)

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// ParseInt reads the leading integer of raw, ignoring leading whitespace and
// any trailing text ("42px" is 42, "4.9" is 4). Input without a leading
// integer, or one that overflows, yields an invalid payload.Int.
func ParseInt(raw string) payload.Int {
	match := leadingInt.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if match == "" {
		return payload.Int{}
	}
	v, err := strconv.Atoi(match)
	if err != nil {
		return payload.Int{}
	}
	return payload.IntOf(v)
}

// ParseFloat reads the leading decimal number of raw with the same leniency
// as ParseInt. Non-finite results are invalid.
func ParseFloat(raw string) payload.Float {
	match := leadingFloat.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if match == "" {
		return payload.Float{}
	}
	if strings.HasSuffix(match, "Infinity") {
		return payload.Float{}
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return payload.Float{}
	}
	return payload.FloatOf(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
