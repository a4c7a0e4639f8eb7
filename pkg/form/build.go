package form

import (
	"github.com/goliatone/go-overlaygen/pkg/font"
	"github.com/goliatone/go-overlaygen/pkg/payload"
)

// BuildPayload reads every field once and returns the request. Numbers are
// parsed leniently and never range-checked; values that fail to parse are
// carried as invalid numbers. The result depends only on the store contents.
func BuildPayload(s *State) payload.RenderRequest {
	family := s.Value(FieldFontFamily)
	weight := font.Weight(s.Value(FieldFontWeight))

	return payload.RenderRequest{
		ImageURL:        s.Value(FieldImageURL),
		Text:            s.Value(FieldOverlayText),
		Language:        s.Value(FieldLanguage),
		FontFamily:      font.Encode(family, weight),
		FontSize:        ParseInt(s.Value(FieldFontSize)),
		TextColor:       s.Value(FieldTextColor),
		BackgroundColor: s.Value(FieldBackgroundColor),
		TextPosition:    nil,
		Alignment:       s.Value(FieldAlignment),
		OutputDimensions: payload.Dimensions{
			Width:  ParseInt(s.Value(FieldOutputWidth)),
			Height: ParseInt(s.Value(FieldOutputHeight)),
		},
		Preset: s.Value(FieldPreset),
		Padding: payload.Padding{
			Top:    ParseInt(s.Value(FieldPaddingTop)),
			Right:  ParseInt(s.Value(FieldPaddingRight)),
			Bottom: ParseInt(s.Value(FieldPaddingBottom)),
			Left:   ParseInt(s.Value(FieldPaddingLeft)),
		},
		TextOpacity:           ParseFloat(s.Value(FieldTextOpacity)),
		BgOpacity:             ParseFloat(s.Value(FieldBgOpacity)),
		BgCurve:               ParseInt(s.Value(FieldBgCurve)),
		ContainerMargin:       ParseInt(s.Value(FieldContainerMargin)),
		ContainerWidthPercent: ParseInt(s.Value(FieldContainerWidth)),
		GradientStartColor:    s.Value(FieldGradientStartColor),
		GradientEndColor:      s.Value(FieldGradientEndColor),
		GradientDirection:     s.Value(FieldGradientDirection),
	}
}
