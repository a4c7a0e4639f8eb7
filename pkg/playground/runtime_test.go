package playground_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/playground"
	"github.com/goliatone/go-overlaygen/pkg/testsupport"
)

// gatedAPI holds each render until the gate for its text is released.
type gatedAPI struct {
	mu    sync.Mutex
	gates map[string]chan struct{}
}

func newGatedAPI(texts ...string) *gatedAPI {
	g := &gatedAPI{gates: make(map[string]chan struct{})}
	for _, text := range texts {
		g.gates[text] = make(chan struct{})
	}
	return g
}

func (g *gatedAPI) release(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	close(g.gates[text])
}

func (g *gatedAPI) ProcessCustom(ctx context.Context, req payload.RenderRequest) (client.Image, error) {
	g.mu.Lock()
	gate := g.gates[req.Text]
	g.mu.Unlock()
	select {
	case <-gate:
	case <-ctx.Done():
		return client.Image{}, ctx.Err()
	}
	return client.Image{Data: []byte(req.Text)}, nil
}

func (g *gatedAPI) Fonts(context.Context) (font.List, error) {
	return font.List{}, errors.New("fonts offline")
}

func startRuntime(t *testing.T, rt *playground.Runtime) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = rt.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return ctx
}

func waitFor(t *testing.T, ctx context.Context, rt *playground.Runtime, cond func(*playground.Model) bool) {
	t.Helper()
	for {
		var ok bool
		if err := rt.Inspect(ctx, func(m *playground.Model) { ok = cond(m) }); err != nil {
			t.Fatalf("inspect: %v", err)
		}
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRuntimeLastResolveWins(t *testing.T) {
	api := newGatedAPI("first", "second")
	rt := playground.NewRuntime(playground.New(), api)
	ctx := startRuntime(t, rt)

	for _, text := range []string{"first", "second"} {
		if err := rt.Send(ctx, playground.SetField{Name: form.FieldOverlayText, Value: text}); err != nil {
			t.Fatalf("set text: %v", err)
		}
		if err := rt.Send(ctx, playground.GenerateRequested{}); err != nil {
			t.Fatalf("generate: %v", err)
		}
	}

	api.release("second")
	waitFor(t, ctx, rt, func(m *playground.Model) bool {
		img, ok := m.Image()
		return ok && string(img.Data) == "second"
	})

	api.release("first")
	if err := rt.Settle(ctx); err != nil {
		t.Fatalf("settle: %v", err)
	}

	_ = rt.Inspect(ctx, func(m *playground.Model) {
		img, _ := m.Image()
		if string(img.Data) != "first" {
			t.Errorf("image = %q, want the response that resolved last", img.Data)
		}
		if m.Request().Text != "second" {
			t.Errorf("request = %q, want the most recent payload", m.Request().Text)
		}
		if m.Status() != playground.StatusLoaded {
			t.Errorf("status = %s", m.Status())
		}
	})
}

func TestRuntimeFontFailureIsOnlyLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	model := playground.New(playground.WithLogger(zap.New(core)))
	rt := playground.NewRuntime(model, newGatedAPI())
	ctx := startRuntime(t, rt)

	if err := rt.Send(ctx, playground.LoadFonts{}); err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	if err := rt.Settle(ctx); err != nil {
		t.Fatalf("settle: %v", err)
	}

	_ = rt.Inspect(ctx, func(m *playground.Model) {
		if len(m.Fonts()) != 0 || m.Status() != playground.StatusIdle || m.ErrorMessage() != "" {
			t.Errorf("font failure leaked into state: fonts=%v status=%s", m.Fonts(), m.Status())
		}
	})
	if logs.FilterMessage("font list unavailable").Len() != 1 {
		t.Fatalf("expected one font failure log, got %v", logs.All())
	}
}

func TestRuntimeAgainstRenderAPI(t *testing.T) {
	api := testsupport.NewRenderAPI(t)
	c := client.New(client.WithBaseURL(api.URL))
	rt := playground.NewRuntime(playground.New(), c)
	ctx := startRuntime(t, rt)

	if err := rt.Send(ctx, playground.ApplyPreset{Group: "english", Index: 0}); err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	if err := rt.Settle(ctx); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if n := len(api.Requests()); n != 1 {
		t.Fatalf("expected one render request, got %d", n)
	}

	api.SetStatus(500)
	if err := rt.Send(ctx, playground.GenerateRequested{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := rt.Settle(ctx); err != nil {
		t.Fatalf("settle: %v", err)
	}

	_ = rt.Inspect(ctx, func(m *playground.Model) {
		if m.Status() != playground.StatusError || m.ErrorMessage() != playground.GenericRenderError {
			t.Errorf("status = %s message = %q", m.Status(), m.ErrorMessage())
		}
		img, ok := m.Image()
		if !ok || !bytes.Equal(img.Data, testsupport.PNG) {
			t.Errorf("earlier image should survive a failed render")
		}
	})
}

func TestSendAfterStop(t *testing.T) {
	rt := playground.NewRuntime(playground.New(), newGatedAPI())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	if err := rt.Send(context.Background(), playground.GenerateRequested{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("run returned %v", err)
	}
	if err := rt.Send(context.Background(), playground.LoadFonts{}); !errors.Is(err, playground.ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
