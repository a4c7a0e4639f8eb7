package form

import "github.com/goliatone/go-overlaygen/pkg/preset"

// Field names mirror the playground controls.
const (
	FieldImageURL           = "imageUrl"
	FieldOverlayText        = "overlayText"
	FieldLanguage           = "language"
	FieldFontFamily         = "fontFamily"
	FieldFontWeight         = "fontWeight"
	FieldFontSize           = "fontSize"
	FieldTextColor          = "textColor"
	FieldBackgroundColor    = "backgroundColor"
	FieldAlignment          = "alignment"
	FieldOutputWidth        = "outputWidth"
	FieldOutputHeight       = "outputHeight"
	FieldPreset             = "preset"
	FieldPaddingTop         = "paddingTop"
	FieldPaddingRight       = "paddingRight"
	FieldPaddingBottom      = "paddingBottom"
	FieldPaddingLeft        = "paddingLeft"
	FieldTextOpacity        = "textOpacity"
	FieldBgOpacity          = "bgOpacity"
	FieldBgCurve            = "bgCurve"
	FieldContainerMargin    = "containerMargin"
	FieldContainerWidth     = "containerWidth"
	FieldGradientStartColor = "gradientStartColor"
	FieldGradientEndColor   = "gradientEndColor"
	FieldGradientDirection  = "gradientDirection"
)

// Kind describes how a field value is interpreted.
type Kind string

const (
	KindText    Kind = "text"
	KindColor   Kind = "color"
	KindSelect  Kind = "select"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
)

// Unit controls the derived display label of numeric fields.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPixels  Unit = "px"
	UnitPercent Unit = "%"
	// UnitRatio renders a 0-1 value as a rounded percentage.
	UnitRatio Unit = "ratio"
)

// Field describes one control.
type Field struct {
	Name    string
	Label   string
	Kind    Kind
	Unit    Unit
	Default string
	Options []string
}

// Gradient directions accepted by the renderer.
var GradientDirections = []string{"vertical", "horizontal", "diagonal"}

// CustomDimension is the preset value that leaves output size untouched.
const CustomDimension = "custom"

var fields = []Field{
	{Name: FieldImageURL, Label: "Image URL", Kind: KindText},
	{Name: FieldOverlayText, Label: "Overlay text", Kind: KindText},
	{Name: FieldLanguage, Label: "Language", Kind: KindSelect, Default: "en", Options: []string{"en", "ar", "ckb"}},
	{Name: FieldFontFamily, Label: "Font family", Kind: KindSelect, Default: "Roboto"},
	{Name: FieldFontWeight, Label: "Font weight", Kind: KindSelect, Default: "400", Options: []string{"300", "400", "500", "700", "italic"}},
	{Name: FieldFontSize, Label: "Font size", Kind: KindInteger, Unit: UnitPixels, Default: "36"},
	{Name: FieldTextColor, Label: "Text color", Kind: KindColor, Default: "#FFFFFF"},
	{Name: FieldBackgroundColor, Label: "Background color", Kind: KindColor, Default: "#000000"},
	{Name: FieldAlignment, Label: "Alignment", Kind: KindSelect, Default: "bottom-center", Options: alignmentOptions()},
	{Name: FieldOutputWidth, Label: "Output width", Kind: KindInteger, Unit: UnitPixels, Default: "1200"},
	{Name: FieldOutputHeight, Label: "Output height", Kind: KindInteger, Unit: UnitPixels, Default: "630"},
	{Name: FieldPreset, Label: "Dimension preset", Kind: KindSelect, Default: CustomDimension},
	{Name: FieldPaddingTop, Label: "Padding top", Kind: KindInteger, Unit: UnitPixels, Default: "20"},
	{Name: FieldPaddingRight, Label: "Padding right", Kind: KindInteger, Unit: UnitPixels, Default: "20"},
	{Name: FieldPaddingBottom, Label: "Padding bottom", Kind: KindInteger, Unit: UnitPixels, Default: "20"},
	{Name: FieldPaddingLeft, Label: "Padding left", Kind: KindInteger, Unit: UnitPixels, Default: "20"},
	{Name: FieldTextOpacity, Label: "Text opacity", Kind: KindFloat, Unit: UnitRatio, Default: "1"},
	{Name: FieldBgOpacity, Label: "Background opacity", Kind: KindFloat, Unit: UnitRatio, Default: "0.7"},
	{Name: FieldBgCurve, Label: "Corner radius", Kind: KindInteger, Unit: UnitPixels, Default: "0"},
	{Name: FieldContainerMargin, Label: "Container margin", Kind: KindInteger, Unit: UnitPixels, Default: "0"},
	{Name: FieldContainerWidth, Label: "Container width", Kind: KindInteger, Unit: UnitPercent, Default: "90"},
	{Name: FieldGradientStartColor, Label: "Gradient start", Kind: KindColor},
	{Name: FieldGradientEndColor, Label: "Gradient end", Kind: KindColor},
	{Name: FieldGradientDirection, Label: "Gradient direction", Kind: KindSelect, Default: "vertical", Options: GradientDirections},
}

func alignmentOptions() []string {
	all := preset.Alignments()
	out := make([]string, len(all))
	for i, a := range all {
		out[i] = string(a)
	}
	return out
}

// Fields returns the field definitions in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f
		out[i].Options = append([]string(nil), f.Options...)
	}
	return out
}

// Lookup returns the definition for name.
func Lookup(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			f.Options = append([]string(nil), f.Options...)
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns the initial value of every field.
func Defaults() map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Name] = f.Default
	}
	return out
}
