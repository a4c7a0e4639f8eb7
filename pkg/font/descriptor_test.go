package font_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-overlaygen/pkg/font"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want font.Descriptor
	}{
		{name: "family and weight", raw: "Roboto:300", want: font.Descriptor{Family: "Roboto", Weight: "300"}},
		{name: "family only", raw: "Roboto", want: font.Descriptor{Family: "Roboto", Weight: "400"}},
		{name: "style keyword", raw: "Open Sans:italic", want: font.Descriptor{Family: "Open Sans", Weight: "italic"}},
		{name: "spaces kept", raw: "Noto Sans Arabic:700", want: font.Descriptor{Family: "Noto Sans Arabic", Weight: "700"}},
		{name: "empty modifier", raw: "Cairo:", want: font.Descriptor{Family: "Cairo", Weight: ""}},
		{name: "extra segments ignored", raw: "Cairo:700:italic", want: font.Descriptor{Family: "Cairo", Weight: "700"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, font.Parse(tc.raw)); diff != "" {
				t.Fatalf("parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescriptorString(t *testing.T) {
	if got := font.Parse("Roboto").String(); got != "Roboto" {
		t.Fatalf("default weight should be omitted, got %q", got)
	}
	if got := font.Parse("Roboto:400").String(); got != "Roboto" {
		t.Fatalf("explicit 400 should be omitted, got %q", got)
	}
	if got := font.Parse("Montserrat:700").String(); got != "Montserrat:700" {
		t.Fatalf("unexpected encoding %q", got)
	}
	if got := font.Encode("Open Sans", "italic"); got != "Open Sans:italic" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestWeightKinds(t *testing.T) {
	if !font.Weight("700").IsNumeric() || font.Weight("700").IsStyle() {
		t.Fatalf("700 should be numeric")
	}
	if font.Weight("italic").IsNumeric() || !font.Weight("italic").IsStyle() {
		t.Fatalf("italic should be a style keyword")
	}
	if font.Weight("").IsNumeric() || font.Weight("").IsStyle() {
		t.Fatalf("empty weight should be neither numeric nor style")
	}
}
