package form

import (
	"strconv"

	"github.com/goliatone/go-overlaygen/pkg/payload"
	"github.com/goliatone/go-overlaygen/pkg/preset"
)

// PresetAssignments maps every field a preset defines onto exactly one form
// field. Optional preset fields that are unset produce no assignment, so the
// corresponding controls keep their current value.
func PresetAssignments(p preset.Preset) []Assignment {
	desc := p.FontDescriptor()

	out := []Assignment{
		{Field: FieldOverlayText, Value: p.Text},
		{Field: FieldLanguage, Value: p.Language},
		{Field: FieldFontFamily, Value: desc.Family},
		{Field: FieldFontWeight, Value: string(desc.Weight)},
		{Field: FieldFontSize, Value: strconv.Itoa(p.Size)},
		{Field: FieldTextColor, Value: p.TextColor},
		{Field: FieldBackgroundColor, Value: p.BgColor},
		{Field: FieldBgOpacity, Value: formatFloat(p.BgOpacity)},
		{Field: FieldBgCurve, Value: strconv.Itoa(p.CornerRadius)},
		{Field: FieldAlignment, Value: string(p.Alignment)},
		{Field: FieldGradientStartColor, Value: p.GradientStart},
		{Field: FieldGradientEndColor, Value: p.GradientEnd},
		{Field: FieldImageURL, Value: p.ImageURL},
	}
	if p.ContainerWidthPercent != nil {
		out = append(out, Assignment{Field: FieldContainerWidth, Value: strconv.Itoa(*p.ContainerWidthPercent)})
	}
	if p.ContainerMargin != nil {
		out = append(out, Assignment{Field: FieldContainerMargin, Value: strconv.Itoa(*p.ContainerMargin)})
	}
	return out
}

// DimensionAssignments selects a dimension preset. Known ids also set width
// and height; any other value (such as CustomDimension) only changes the
// selection.
func DimensionAssignments(catalog *preset.Catalog, id string) []Assignment {
	out := []Assignment{{Field: FieldPreset, Value: id}}
	if dim, ok := catalog.Dimension(id); ok {
		out = append(out,
			Assignment{Field: FieldOutputWidth, Value: strconv.Itoa(dim.Width)},
			Assignment{Field: FieldOutputHeight, Value: strconv.Itoa(dim.Height)},
		)
	}
	return out
}

// GradientAssignments sets both gradient colors.
func GradientAssignments(g preset.Gradient) []Assignment {
	return []Assignment{
		{Field: FieldGradientStartColor, Value: g.Start},
		{Field: FieldGradientEndColor, Value: g.End},
	}
}

// ApplyPreset applies p to s.
func ApplyPreset(s *State, p preset.Preset) error {
	return s.Apply(PresetAssignments(p))
}

// PresetPayload applies p to a fresh default store and builds the payload,
// which is what selecting the preset in an untouched form sends.
func PresetPayload(p preset.Preset) (payload.RenderRequest, error) {
	s := NewState()
	if err := ApplyPreset(s, p); err != nil {
		return payload.RenderRequest{}, err
	}
	return BuildPayload(s), nil
}
