package preset

import (
	"strings"

	"github.com/goliatone/go-overlaygen/pkg/font"
)

// Alignment anchors overlay text: "<vertical>-<horizontal>".
type Alignment string

const (
	AlignTopLeft      Alignment = "top-left"
	AlignTopCenter    Alignment = "top-center"
	AlignTopRight     Alignment = "top-right"
	AlignCenterLeft   Alignment = "center-left"
	AlignCenterCenter Alignment = "center-center"
	AlignCenterRight  Alignment = "center-right"
	AlignBottomLeft   Alignment = "bottom-left"
	AlignBottomCenter Alignment = "bottom-center"
	AlignBottomRight  Alignment = "bottom-right"
)

// Alignments lists the nine alignment tags, row by row.
func Alignments() []Alignment {
	return []Alignment{
		AlignTopLeft, AlignTopCenter, AlignTopRight,
		AlignCenterLeft, AlignCenterCenter, AlignCenterRight,
		AlignBottomLeft, AlignBottomCenter, AlignBottomRight,
	}
}

// Valid reports whether a is one of the nine known tags.
func (a Alignment) Valid() bool {
	for _, known := range Alignments() {
		if a == known {
			return true
		}
	}
	return false
}

// Parts splits the tag into its vertical and horizontal anchors.
func (a Alignment) Parts() (vertical, horizontal string) {
	vertical, horizontal, _ = strings.Cut(string(a), "-")
	return vertical, horizontal
}

// Preset is one example configuration. Container sizing is optional; a nil
// pointer means the preset does not define the value.
type Preset struct {
	Name                  string    `yaml:"name" json:"name"`
	Text                  string    `yaml:"text" json:"text"`
	Language              string    `yaml:"language" json:"language"`
	Font                  string    `yaml:"font" json:"font"`
	Size                  int       `yaml:"size" json:"size"`
	TextColor             string    `yaml:"text_color" json:"text_color"`
	BgColor               string    `yaml:"bg_color" json:"bg_color"`
	BgOpacity             float64   `yaml:"bg_opacity" json:"bg_opacity"`
	CornerRadius          int       `yaml:"corner_radius" json:"corner_radius"`
	Alignment             Alignment `yaml:"alignment" json:"alignment"`
	GradientStart         string    `yaml:"gradient_start" json:"gradient_start"`
	GradientEnd           string    `yaml:"gradient_end" json:"gradient_end"`
	ContainerWidthPercent *int      `yaml:"container_width_percent,omitempty" json:"container_width_percent,omitempty"`
	ContainerMargin       *int      `yaml:"container_margin,omitempty" json:"container_margin,omitempty"`
	ImageURL              string    `yaml:"image_url" json:"image_url"`
	Description           string    `yaml:"description" json:"description"`
}

// FontDescriptor parses the preset font string.
func (p Preset) FontDescriptor() font.Descriptor {
	return font.Parse(p.Font)
}

// Group is a language tab with its ordered presets.
type Group struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Badge   string   `yaml:"badge" json:"badge"`
	Presets []Preset `yaml:"presets" json:"presets"`
}

// Dimension is an output size shortcut keyed by the form's preset value.
type Dimension struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// Gradient is a named pair of gradient colors.
type Gradient struct {
	Name  string `yaml:"name" json:"name"`
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}
