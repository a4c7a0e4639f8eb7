package preset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-overlaygen/pkg/preset"
)

func TestLintBundledCatalogIsClean(t *testing.T) {
	if got := preset.Lint(preset.Default()); len(got) != 0 {
		t.Fatalf("bundled catalog has violations: %v", got)
	}
}

func TestLintReportsProblems(t *testing.T) {
	doc := []byte(`
groups:
  - id: english
    presets:
      - name: One
        text: hi
        language: en
        font: "Roboto:700"
        size: 0
        text_color: "#FFF"
        bg_color: black
        bg_opacity: 1.5
        alignment: middle
        gradient_start: "#000000"
        gradient_end: "#FFFFFF"
        container_width_percent: 120
        image_url: https://example.com/a.jpg
      - name: one
        text: again
        language: ar
        font: Cairo
        size: 10
        text_color: "#FFFFFF"
        bg_color: "#000000"
        alignment: top-left
        gradient_start: "#000000"
        gradient_end: "#FFFFFF"
        image_url: https://example.com/b.jpg
dimensions:
  - id: square
    width: 0
    height: 10
`)
	catalog, err := preset.Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []preset.Violation{
		{Location: "dimensions[0]", Message: "size 0x10 must be positive"},
		{Location: "groups.english.presets[0]", Message: `alignment "middle" is not one of the nine anchors`},
		{Location: "groups.english.presets[0]", Message: `bg_color "black" is not a hex color`},
		{Location: "groups.english.presets[0]", Message: "bg_opacity 1.5 outside 0-1"},
		{Location: "groups.english.presets[0]", Message: "container_width_percent 120 outside 1-100"},
		{Location: "groups.english.presets[0]", Message: "size 0 must be positive"},
		{Location: "groups.english.presets[1]", Message: `language "ar" differs from group language "en"`},
		{Location: "groups.english.presets[1]", Message: `name "one" already used at groups.english.presets[0]`},
	}
	if diff := cmp.Diff(want, preset.Lint(catalog)); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := preset.Parse([]byte("groups: [")); err == nil {
		t.Fatalf("expected decode error")
	}
}
