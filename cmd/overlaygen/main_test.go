package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/preset"
	"github.com/goliatone/go-overlaygen/pkg/testsupport"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-log-level", "error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	if code != exitUsage || !strings.Contains(stderr, "Commands:") {
		t.Fatalf("expected usage, got %d %q", code, stderr)
	}
	if code, _, _ := runCLI(t, "explode"); code != exitUsage {
		t.Fatalf("unknown command: expected %d, got %d", exitUsage, code)
	}
}

func TestPresetsCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "presets")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"GROUP", "Professional Quote", "Montserrat:700", "Kurdish Inspiration"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if lines := strings.Count(stdout, "\n"); lines != 11 {
		t.Errorf("expected header plus 10 presets, got %d lines", lines)
	}
}

func TestPayloadCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "payload", "-preset", "nature caption")
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	req, err := payload.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.FontFamily != "Roboto:300" || req.FontSize.Value != 42 {
		t.Fatalf("unexpected payload %+v", req)
	}

	code, stdout, _ = runCLI(t, "-api", "https://render.example.com/", "payload", "-group", "arabic", "-index", "0", "-curl")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(stdout, "curl -X POST https://render.example.com/process_custom \\\n") {
		t.Fatalf("unexpected command:\n%s", stdout)
	}

	if code, _, _ := runCLI(t, "payload"); code != exitUsage {
		t.Fatalf("missing preset: expected usage exit, got %d", code)
	}
	if code, _, _ := runCLI(t, "payload", "-preset", "nope"); code != exitError {
		t.Fatalf("unknown preset: expected error exit, got %d", code)
	}
}

func TestPayloadCommandMatchesPresetPayload(t *testing.T) {
	nature, ok := preset.Default().Find("Nature Caption")
	if !ok {
		t.Fatal("Nature Caption preset missing")
	}
	req, err := form.PresetPayload(nature)
	if err != nil {
		t.Fatalf("preset payload: %v", err)
	}
	body, err := payload.Encode(req)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	code, stdout, stderr := runCLI(t, "payload", "-preset", "Nature Caption")
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != string(body)+"\n" {
		t.Fatalf("payload output:\n%s\nwant:\n%s", stdout, body)
	}
}

func TestRenderCommand(t *testing.T) {
	api := testsupport.NewRenderAPI(t)
	out := filepath.Join(t.TempDir(), "nested", "out.png")

	code, stdout, stderr := runCLI(t, "-api", api.URL, "render", "-preset", "Arabic Wisdom", "-out", out)
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil || !bytes.Equal(data, testsupport.PNG) {
		t.Fatalf("image not written: %v", err)
	}
	if !strings.Contains(stdout, out) {
		t.Fatalf("expected path in output, got %q", stdout)
	}

	api.SetStatus(http.StatusBadRequest)
	code, _, stderr = runCLI(t, "-api", api.URL, "render", "-preset", "Arabic Wisdom", "-out", out)
	if code != exitError || !strings.Contains(stderr, playground.GenericRenderError) {
		t.Fatalf("expected generic failure, got %d %q", code, stderr)
	}
}

func TestRenderCommandNamesFileFromContentType(t *testing.T) {
	api := testsupport.NewRenderAPI(t)
	api.SetContentType("image/jpeg")
	dir := t.TempDir()
	t.Setenv("OVERLAYGEN_OUTPUT_DIR", dir)

	code, _, stderr := runCLI(t, "-api", api.URL, "render", "-preset", "Arabic Wisdom")
	if code != exitOK {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	jpegs, err := filepath.Glob(filepath.Join(dir, "*.jpg"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(jpegs) != 1 {
		t.Fatalf("expected one .jpg in %s, got %v", dir, jpegs)
	}
	if pngs, _ := filepath.Glob(filepath.Join(dir, "*.png")); len(pngs) != 0 {
		t.Fatalf("unexpected .png output: %v", pngs)
	}
}

func TestFontsCommand(t *testing.T) {
	api := testsupport.NewRenderAPI(t)
	api.SetFonts(&font.List{Local: []string{"Vazirmatn"}, Google: []string{"Amiri", "Cairo"}}, 0)

	code, stdout, _ := runCLI(t, "-api", api.URL, "fonts")
	if code != exitOK {
		t.Fatalf("exit %d", code)
	}
	want := "Local Fonts (1)\n  Vazirmatn\nGoogle Fonts (2)\n  Amiri\n  Cairo\n"
	if stdout != want {
		t.Fatalf("fonts output:\n%s\nwant:\n%s", stdout, want)
	}

	api.SetFonts(nil, http.StatusInternalServerError)
	code, stdout, _ = runCLI(t, "-api", api.URL, "fonts")
	if code != exitOK {
		t.Fatalf("font failure must not be fatal, got exit %d", code)
	}
	if stdout != "Local Fonts (0)\nGoogle Fonts (0)\n" {
		t.Fatalf("expected empty groups, got %q", stdout)
	}
}

func TestHealthCommand(t *testing.T) {
	api := testsupport.NewRenderAPI(t)
	code, stdout, _ := runCLI(t, "-api", api.URL, "health")
	if code != exitOK || !strings.Contains(stdout, "healthy (version 1.0.0)") {
		t.Fatalf("unexpected health output %d %q", code, stdout)
	}
}

func TestLintCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "lint")
	if code != exitOK {
		t.Fatalf("lint failed: %s", stderr)
	}
	if stdout != "10 presets ok\n" {
		t.Fatalf("unexpected lint output %q", stdout)
	}
}
