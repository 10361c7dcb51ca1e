package catalog

import (
	"errors"
	"fmt"
)

// ErrPresetNotFound is returned when no preset has the requested name.
// Callers fall back to interactive or default selection.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named bundle of module ids.
type Preset struct {
	Name  string
	Color string

	Animation       string
	StateManagement string
	Three           string
	ReactThree      []string
	Creative        []string
}

func defaultPresets() []Preset {
	return []Preset{
		{
			Name:            "popular",
			Color:           "blue",
			Animation:       "gsap",
			StateManagement: "zustand",
			Three:           "react-three-fiber",
			Creative:        []string{"lenis"},
		},
	}
}

// Presets returns the known presets in declaration order.
func (c *Catalog) Presets() []Preset {
	return append([]Preset(nil), c.presets...)
}

// PresetNames returns the preset names in declaration order.
func (c *Catalog) PresetNames() []string {
	names := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		names = append(names, p.Name)
	}
	return names
}

// FindByTemplateName resolves a preset into a selection.
func (c *Catalog) FindByTemplateName(name string) (Selection, error) {
	for _, p := range c.presets {
		if p.Name == name {
			return c.resolvePreset(p)
		}
	}
	return Selection{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

func (c *Catalog) resolvePreset(p Preset) (Selection, error) {
	sel, err := c.Resolve(Choices{
		Animation:       p.Animation,
		StateManagement: p.StateManagement,
		Three:           p.Three,
		ReactThree:      p.ReactThree,
		Creative:        p.Creative,
	})
	if err != nil {
		return Selection{}, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return sel, nil
}
