package preset

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Violation is one data problem found by Lint.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + ": " + v.Message
}

// Lint checks catalog data that the application trusts at runtime. The
// result is sorted by location.
func Lint(c *Catalog) []Violation {
	if c == nil {
		return []Violation{{Location: "catalog", Message: "catalog is nil"}}
	}

	var out []Violation
	add := func(location, format string, args ...any) {
		out = append(out, Violation{Location: location, Message: fmt.Sprintf(format, args...)})
	}

	seenGroups := map[string]bool{}
	seenNames := map[string]string{}
	for _, group := range c.groups {
		if group.ID == "" {
			add("groups", "group without id")
			continue
		}
		if seenGroups[group.ID] {
			add("groups."+group.ID, "duplicate group id")
		}
		seenGroups[group.ID] = true

		language := ""
		for i, p := range group.Presets {
			loc := fmt.Sprintf("groups.%s.presets[%d]", group.ID, i)
			if p.Name == "" {
				add(loc, "name is empty")
			} else {
				key := strings.ToLower(strings.TrimSpace(p.Name))
				if prev, ok := seenNames[key]; ok {
					add(loc, "name %q already used at %s", p.Name, prev)
				} else {
					seenNames[key] = loc
				}
			}
			if p.Text == "" {
				add(loc, "text is empty")
			}
			if p.ImageURL == "" {
				add(loc, "image_url is empty")
			}
			if language == "" {
				language = p.Language
			} else if p.Language != language {
				add(loc, "language %q differs from group language %q", p.Language, language)
			}
			if p.FontDescriptor().Family == "" {
				add(loc, "font %q has no family", p.Font)
			}
			if p.Size <= 0 {
				add(loc, "size %d must be positive", p.Size)
			}
			if p.BgOpacity < 0 || p.BgOpacity > 1 {
				add(loc, "bg_opacity %v outside 0-1", p.BgOpacity)
			}
			if p.CornerRadius < 0 {
				add(loc, "corner_radius %d is negative", p.CornerRadius)
			}
			if !p.Alignment.Valid() {
				add(loc, "alignment %q is not one of the nine anchors", p.Alignment)
			}
			for field, color := range map[string]string{
				"text_color":     p.TextColor,
				"bg_color":       p.BgColor,
				"gradient_start": p.GradientStart,
				"gradient_end":   p.GradientEnd,
			} {
				if !hexColor.MatchString(color) {
					add(loc, "%s %q is not a hex color", field, color)
				}
			}
			if w := p.ContainerWidthPercent; w != nil && (*w <= 0 || *w > 100) {
				add(loc, "container_width_percent %d outside 1-100", *w)
			}
			if m := p.ContainerMargin; m != nil && *m < 0 {
				add(loc, "container_margin %d is negative", *m)
			}
		}
	}

	for i, d := range c.dimensions {
		loc := fmt.Sprintf("dimensions[%d]", i)
		if d.ID == "" {
			add(loc, "id is empty")
		}
		if d.Width <= 0 || d.Height <= 0 {
			add(loc, "size %dx%d must be positive", d.Width, d.Height)
		}
	}

	for i, g := range c.gradients {
		loc := fmt.Sprintf("gradients[%d]", i)
		if g.Name == "" {
			add(loc, "name is empty")
		}
		if !hexColor.MatchString(g.Start) || !hexColor.MatchString(g.End) {
			add(loc, "colors %q and %q must be hex colors", g.Start, g.End)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Location == out[j].Location {
			return out[i].Message < out[j].Message
		}
		return out[i].Location < out[j].Location
	})
	return out
}
