package playground_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

func mustUpdate(t *testing.T, m *playground.Model, msg playground.Msg) []playground.Cmd {
	t.Helper()
	cmds, err := m.Update(msg)
	if err != nil {
		t.Fatalf("update %T: %v", msg, err)
	}
	return cmds
}

func TestApplyPresetRendersOnce(t *testing.T) {
	m := playground.New()
	want, ok := preset.Default().Preset("arabic", 1)
	if !ok {
		t.Fatalf("missing bundled preset")
	}

	cmds := mustUpdate(t, m, playground.ApplyPreset{Group: "arabic", Index: 1})
	if len(cmds) != 1 {
		t.Fatalf("expected exactly one command, got %d", len(cmds))
	}
	render, ok := cmds[0].(playground.RenderCmd)
	if !ok {
		t.Fatalf("expected RenderCmd, got %T", cmds[0])
	}
	if render.Request.Text != want.Text || render.Request.Language != want.Language {
		t.Fatalf("render request does not carry preset values: %+v", render.Request)
	}
	if diff := cmp.Diff(render.Request, m.Request()); diff != "" {
		t.Fatalf("stored request differs from command (-cmd +model):\n%s", diff)
	}
	if m.Status() != playground.StatusLoading {
		t.Fatalf("status = %s, want loading", m.Status())
	}
	if m.LastPreset() != want.Name {
		t.Fatalf("last preset = %q", m.LastPreset())
	}
	if !strings.HasPrefix(m.Command(), "curl -X POST http://localhost:5001/process_custom") {
		t.Fatalf("unexpected command %q", m.Command())
	}
}

func TestGenerateUsesCurrentForm(t *testing.T) {
	m := playground.New()
	mustUpdate(t, m, playground.SetField{Name: form.FieldFontSize, Value: "big"})
	mustUpdate(t, m, playground.SetField{Name: form.FieldOverlayText, Value: "Hello"})

	if m.Status() != playground.StatusIdle {
		t.Fatalf("editing fields should not change status, got %s", m.Status())
	}

	cmds := mustUpdate(t, m, playground.GenerateRequested{})
	req := cmds[0].(playground.RenderCmd).Request
	if req.FontSize.Valid {
		t.Fatalf("font size should be invalid, got %v", req.FontSize)
	}
	if req.Text != "Hello" {
		t.Fatalf("text = %q", req.Text)
	}
	if !strings.Contains(m.Command(), `"font_size": null`) {
		t.Fatalf("command should carry the null size:\n%s", m.Command())
	}
}

func TestFailedRenderKeepsPreviousImage(t *testing.T) {
	m := playground.New()
	first := client.Image{Data: []byte("first"), ContentType: "image/png"}

	mustUpdate(t, m, playground.GenerateRequested{})
	mustUpdate(t, m, playground.RenderSucceeded{Image: first})
	if m.Status() != playground.StatusLoaded {
		t.Fatalf("status = %s, want loaded", m.Status())
	}

	mustUpdate(t, m, playground.GenerateRequested{})
	mustUpdate(t, m, playground.RenderFailed{Err: client.ErrUnexpectedStatus})

	if m.Status() != playground.StatusError {
		t.Fatalf("status = %s, want error", m.Status())
	}
	if m.ErrorMessage() != playground.GenericRenderError {
		t.Fatalf("error message = %q", m.ErrorMessage())
	}
	img, ok := m.Image()
	if !ok || string(img.Data) != "first" {
		t.Fatalf("previous image should be kept, got %q (ok=%v)", img.Data, ok)
	}

	mustUpdate(t, m, playground.GenerateRequested{})
	if m.Status() != playground.StatusLoading || m.ErrorMessage() != "" {
		t.Fatalf("retrying should clear the error, got %s %q", m.Status(), m.ErrorMessage())
	}
}

func TestUpdateErrors(t *testing.T) {
	m := playground.New()

	if _, err := m.Update(playground.ApplyPreset{Group: "english", Index: 9}); !errors.Is(err, playground.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := m.Update(playground.SetField{Name: "nope", Value: "1"}); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if _, err := m.Update(playground.ApplyGradientPreset{Name: "Plaid"}); !errors.Is(err, playground.ErrUnknownGradient) {
		t.Fatalf("expected ErrUnknownGradient, got %v", err)
	}
	if _, err := m.Update(nil); !errors.Is(err, playground.ErrUnknownMsg) {
		t.Fatalf("expected ErrUnknownMsg, got %v", err)
	}
}

func TestDimensionAndGradientPresets(t *testing.T) {
	m := playground.New()

	mustUpdate(t, m, playground.SelectDimensionPreset{ID: "instagram-stories"})
	if m.Value(form.FieldOutputWidth) != "1080" || m.Value(form.FieldOutputHeight) != "1920" {
		t.Fatalf("dimension not applied: %sx%s", m.Value(form.FieldOutputWidth), m.Value(form.FieldOutputHeight))
	}

	mustUpdate(t, m, playground.SelectDimensionPreset{ID: form.CustomDimension})
	if m.Value(form.FieldPreset) != form.CustomDimension || m.Value(form.FieldOutputWidth) != "1080" {
		t.Fatalf("custom should keep size, got preset=%q width=%q", m.Value(form.FieldPreset), m.Value(form.FieldOutputWidth))
	}

	gradient := m.Catalog().Gradients()[0]
	mustUpdate(t, m, playground.ApplyGradientPreset{Name: gradient.Name})
	if m.Value(form.FieldGradientStartColor) != gradient.Start || m.Value(form.FieldGradientEndColor) != gradient.End {
		t.Fatalf("gradient not applied")
	}
}

func TestFonts(t *testing.T) {
	m := playground.New()

	cmds := mustUpdate(t, m, playground.LoadFonts{})
	if diff := cmp.Diff([]playground.Cmd{playground.FetchFontsCmd{}}, cmds); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}

	mustUpdate(t, m, playground.FontsLoaded{List: font.List{Local: []string{"Zain"}, Google: []string{"Amiri"}}})
	want := []font.Entry{{Name: "Amiri", Origin: font.OriginGoogle}, {Name: "Zain", Origin: font.OriginLocal}}
	if diff := cmp.Diff(want, m.Fonts()); diff != "" {
		t.Fatalf("fonts mismatch (-want +got):\n%s", diff)
	}

	mustUpdate(t, m, playground.FontsFailed{Err: errors.New("boom")})
	if len(m.Fonts()) != 0 {
		t.Fatalf("failed font load should leave an empty list")
	}
	if m.Status() != playground.StatusIdle {
		t.Fatalf("font failure must not touch preview status")
	}
}
