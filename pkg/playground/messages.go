package playground

import (
	"github.com/goliatone/go-overlaygen/pkg/client"
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

// Msg is an input to Model.Update.
type Msg interface {
	isMsg()
}

// ApplyPreset copies a bundled preset into the form and renders it.
type ApplyPreset struct {
	Group string
	Index int
}

// SetField writes one form field.
type SetField struct {
	Name  string
	Value string
}

// SelectDimensionPreset picks an output size preset. Unknown ids such as
// "custom" only change the selection.
type SelectDimensionPreset struct {
	ID string
}

// ApplyGradientPreset sets both gradient colors from a named pair.
type ApplyGradientPreset struct {
	Name string
}

// GenerateRequested builds the payload from the form and renders it.
type GenerateRequested struct{}

// RenderSucceeded carries the image returned by the rendering API.
type RenderSucceeded struct {
	Image client.Image
}

// RenderFailed reports a transport or status failure.
type RenderFailed struct {
	Err error
}

// LoadFonts asks for the font list.
type LoadFonts struct{}

// FontsLoaded carries the font list response.
type FontsLoaded struct {
	List font.List
}

// FontsFailed reports that the font list could not be fetched.
type FontsFailed struct {
	Err error
}

func (ApplyPreset) isMsg()           {}
func (SetField) isMsg()              {}
func (SelectDimensionPreset) isMsg() {}
func (ApplyGradientPreset) isMsg()   {}
func (GenerateRequested) isMsg()     {}
func (RenderSucceeded) isMsg()       {}
func (RenderFailed) isMsg()          {}
func (LoadFonts) isMsg()             {}
func (FontsLoaded) isMsg()           {}
func (FontsFailed) isMsg()           {}

// Cmd is a side effect requested by Model.Update.
type Cmd interface {
	isCmd()
}

// RenderCmd posts Request to the rendering API. The request is the exact
// payload the command string was generated from.
type RenderCmd struct {
	Request payload.RenderRequest
}

// FetchFontsCmd reads the font list.
type FetchFontsCmd struct{}

func (RenderCmd) isCmd()     {}
func (FetchFontsCmd) isCmd() {}
