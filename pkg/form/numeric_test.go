package form_test

import (
	"testing"

	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

func TestParseInt(t *testing.T) {
	cases := map[string]payload.Int{
		"42":                     payload.IntOf(42),
		"  42":                   payload.IntOf(42),
		"42px":                   payload.IntOf(42),
		"4.9":                    payload.IntOf(4),
		"-7":                     payload.IntOf(-7),
		"+3":                     payload.IntOf(3),
		"":                       {},
		"abc":                    {},
		"px42":                   {},
		"-":                      {},
		"9999999999999999999999": {},
	}
	for raw, want := range cases {
		if got := form.ParseInt(raw); got != want {
			t.Errorf("ParseInt(%q) = %+v, want %+v", raw, got, want)
		}
	}
}

func TestParseFloat(t *testing.T) {
	cases := map[string]payload.Float{
		"0.85":      payload.FloatOf(0.85),
		"1":         payload.FloatOf(1),
		".5":        payload.FloatOf(0.5),
		"1e-1":      payload.FloatOf(0.1),
		"0.7abc":    payload.FloatOf(0.7),
		" -0.25":    payload.FloatOf(-0.25),
		"":          {},
		"abc":       {},
		"Infinity":  {},
		"-Infinity": {},
		"+Infinity": {},
		"1e999":     {},
	}
	for raw, want := range cases {
		if got := form.ParseFloat(raw); got != want {
			t.Errorf("ParseFloat(%q) = %+v, want %+v", raw, got, want)
		}
	}
}
