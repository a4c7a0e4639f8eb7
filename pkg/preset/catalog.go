package preset

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var bundled []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Catalog holds the bundled groups, dimension shortcuts, and gradients in
// declaration order. Accessors return copies so callers cannot mutate it.
type Catalog struct {
	groups     []Group
	dimensions []Dimension
	gradients  []Gradient
}

type document struct {
	Groups     []Group     `yaml:"groups"`
	Dimensions []Dimension `yaml:"dimensions"`
	Gradients  []Gradient  `yaml:"gradients"`
}

// Default returns the catalog embedded in the binary. The bundled data is
// trusted; a decode failure is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := Parse(bundled)
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Parse decodes a catalog document laid out like the bundled one. It only
// decodes; Lint reports data problems.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: decode catalog: %w", err)
	}
	return &Catalog{
		groups:     doc.Groups,
		dimensions: doc.Dimensions,
		gradients:  doc.Gradients,
	}, nil
}

// Groups returns all language groups in order.
func (c *Catalog) Groups() []Group {
	if c == nil {
		return nil
	}
	out := make([]Group, len(c.groups))
	for i, group := range c.groups {
		out[i] = copyGroup(group)
	}
	return out
}

// Languages returns the group identifiers in order.
func (c *Catalog) Languages() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.groups))
	for i, group := range c.groups {
		out[i] = group.ID
	}
	return out
}

// Group returns the group with the given id.
func (c *Catalog) Group(id string) (Group, bool) {
	if c == nil {
		return Group{}, false
	}
	for _, group := range c.groups {
		if group.ID == id {
			return copyGroup(group), true
		}
	}
	return Group{}, false
}

// Preset returns the preset at index inside group id.
func (c *Catalog) Preset(id string, index int) (Preset, bool) {
	group, ok := c.Group(id)
	if !ok || index < 0 || index >= len(group.Presets) {
		return Preset{}, false
	}
	return group.Presets[index], true
}

// Find looks a preset up by name, ignoring case and surrounding spaces.
func (c *Catalog) Find(name string) (Preset, bool) {
	if c == nil {
		return Preset{}, false
	}
	needle := strings.TrimSpace(name)
	for _, group := range c.groups {
		for _, p := range group.Presets {
			if strings.EqualFold(p.Name, needle) {
				return copyPreset(p), true
			}
		}
	}
	return Preset{}, false
}

// All returns every preset across groups, in catalog order.
func (c *Catalog) All() []Preset {
	if c == nil {
		return nil
	}
	var out []Preset
	for _, group := range c.groups {
		for _, p := range group.Presets {
			out = append(out, copyPreset(p))
		}
	}
	return out
}

// Dimensions returns the output size shortcuts.
func (c *Catalog) Dimensions() []Dimension {
	if c == nil {
		return nil
	}
	return append([]Dimension(nil), c.dimensions...)
}

// Dimension returns the shortcut for id. Unknown ids (including "custom")
// report false.
func (c *Catalog) Dimension(id string) (Dimension, bool) {
	if c == nil {
		return Dimension{}, false
	}
	for _, dim := range c.dimensions {
		if dim.ID == id {
			return dim, true
		}
	}
	return Dimension{}, false
}

// Gradients returns the gradient shortcuts.
func (c *Catalog) Gradients() []Gradient {
	if c == nil {
		return nil
	}
	return append([]Gradient(nil), c.gradients...)
}

// Gradient looks a gradient up by name, ignoring case.
func (c *Catalog) Gradient(name string) (Gradient, bool) {
	if c == nil {
		return Gradient{}, false
	}
	for _, g := range c.gradients {
		if strings.EqualFold(g.Name, strings.TrimSpace(name)) {
			return g, true
		}
	}
	return Gradient{}, false
}

func copyGroup(group Group) Group {
	out := group
	out.Presets = make([]Preset, len(group.Presets))
	for i, p := range group.Presets {
		out.Presets[i] = copyPreset(p)
	}
	return out
}

func copyPreset(p Preset) Preset {
	out := p
	if p.ContainerWidthPercent != nil {
		v := *p.ContainerWidthPercent
		out.ContainerWidthPercent = &v
	}
	if p.ContainerMargin != nil {
		v := *p.ContainerMargin
		out.ContainerMargin = &v
	}
	return out
}
