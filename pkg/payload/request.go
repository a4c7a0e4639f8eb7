package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dimensions is the requested output size.
type Dimensions struct {
	Width  Int `json:"width"`
	Height Int `json:"height"`
}

// Padding is the per-side container padding in pixels.
type Padding struct {
	Top    Int `json:"top"`
	Right  Int `json:"right"`
	Bottom Int `json:"bottom"`
	Left   Int `json:"left"`
}

// RenderRequest is the body of POST /process_custom. It is rebuilt from form
// state on every generate action and carries no identity of its own.
type RenderRequest struct {
	ImageURL              string     `json:"image_url"`
	Text                  string     `json:"text"`
	Language              string     `json:"language"`
	FontFamily            string     `json:"font_family"`
	FontSize              Int        `json:"font_size"`
	TextColor             string     `json:"text_color"`
	BackgroundColor       string     `json:"background_color"`
	TextPosition          *string    `json:"text_position"`
	Alignment             string     `json:"alignment"`
	OutputDimensions      Dimensions `json:"output_dimensions"`
	Preset                string     `json:"preset"`
	Padding               Padding    `json:"padding"`
	TextOpacity           Float      `json:"text_opacity"`
	BgOpacity             Float      `json:"bg_opacity"`
	BgCurve               Int        `json:"bg_curve"`
	ContainerMargin       Int        `json:"container_margin"`
	ContainerWidthPercent Int        `json:"container_width_percent"`
	GradientStartColor    string     `json:"gradient_start_color"`
	GradientEndColor      string     `json:"gradient_end_color"`
	GradientDirection     string     `json:"gradient_direction"`
}

// Encode returns the request as JSON indented with two spaces. HTML
// characters are not escaped so URLs stay copy/paste friendly.
func Encode(req RenderRequest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("payload: encode request: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Compact returns the request as single-line JSON, used as the HTTP body.
func Compact(req RenderRequest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("payload: encode request: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a JSON request body.
func Decode(data []byte) (RenderRequest, error) {
	var req RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return RenderRequest{}, fmt.Errorf("payload: decode request: %w", err)
	}
	return req, nil
}
