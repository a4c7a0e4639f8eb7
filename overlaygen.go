// Package overlaygen is the top-level entry point: bundled presets, payload
// and curl command generation, and the rendering API client.
package overlaygen

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-overlaygen/pkg/apispec"
	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/form"
	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

// ErrPresetNotFound is returned when a preset name does not match the
// bundled catalog.
var ErrPresetNotFound = errors.New("overlaygen: preset not found")

// RenderRequest aliases payload.RenderRequest for callers that only need the
// top-level package.
type RenderRequest = payload.RenderRequest

// Preset aliases preset.Preset.
type Preset = preset.Preset

// Image aliases client.Image.
type Image = client.Image

// Presets returns the bundled catalog.
func Presets() *preset.Catalog {
	return preset.Default()
}

// Payload builds the request that selecting the named preset sends from a
// fresh form. Names match case-insensitively.
func Payload(name string) (RenderRequest, error) {
	p, ok := preset.Default().Find(name)
	if !ok {
		return RenderRequest{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return form.PresetPayload(p)
}

// Command renders the curl command for the named preset.
func Command(name string, options ...payload.CommandOption) (string, error) {
	req, err := Payload(name)
	if err != nil {
		return "", err
	}
	return payload.Command(req, options...)
}

// NewClient exposes the API client constructor from the top-level module.
func NewClient(options ...client.Option) *client.Client {
	return client.New(options...)
}

// Render posts the named preset through c.
func Render(ctx context.Context, c *client.Client, name string) (Image, error) {
	req, err := Payload(name)
	if err != nil {
		return Image{}, err
	}
	return c.ProcessCustom(ctx, req)
}

// LoadContract loads the embedded OpenAPI description of the rendering API.
func LoadContract(ctx context.Context) (*apispec.Contract, error) {
	return apispec.Load(ctx)
}
