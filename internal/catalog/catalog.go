package catalog

import (
	"fmt"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Catalog is an immutable registry of modules and presets. Build it once and
// pass it to the components that need it.
type Catalog struct {
	modules map[Category][]Module
	presets []Preset
}

// New builds a catalog and validates it.
func New(modules map[Category][]Module, presets []Preset) (*Catalog, error) {
	c := &Catalog{
		modules: make(map[Category][]Module, len(modules)),
		presets: append([]Preset(nil), presets...),
	}
	for cat, mods := range modules {
		list := make([]Module, 0, len(mods))
		for _, m := range mods {
			list = append(list, m.clone())
		}
		c.modules[cat] = list
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup returns the modules of a category in display order.
// The returned modules are copies.
func (c *Catalog) Lookup(cat Category) []Module {
	mods := c.modules[cat]
	out := make([]Module, 0, len(mods))
	for _, m := range mods {
		out = append(out, m.clone())
	}
	return out
}

// Find returns the module with the given id in a category.
func (c *Catalog) Find(cat Category, id string) (Module, bool) {
	for _, m := range c.modules[cat] {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return Module{}, false
}

// Modules returns every module of every category, in category order.
func (c *Catalog) Modules() []Module {
	var out []Module
	for _, cat := range Categories() {
		out = append(out, c.Lookup(cat)...)
	}
	return out
}

// AllPackages returns the deduplicated union of every module's packages,
// in catalog order.
func (c *Catalog) AllPackages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.Modules() {
		for _, p := range m.Packages {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// Demos returns every module that carries a demo fragment.
func (c *Catalog) Demos() []Module {
	var out []Module
	for _, m := range c.Modules() {
		if m.HasDemo() {
			out = append(out, m)
		}
	}
	return out
}

// Validate checks the catalog for internal consistency: known categories,
// unique ids, a leading none sentinel in single-choice categories, known
// insertion points, and presets referring to existing modules.
func (c *Catalog) Validate() error {
	known := make(map[Category]bool)
	for _, cat := range Categories() {
		known[cat] = true
	}

	for cat, mods := range c.modules {
		if !known[cat] {
			return oerrors.NewTemplateError(fmt.Sprintf("unknown category %q", cat), "", nil)
		}

		if !cat.MultiChoice() && (len(mods) == 0 || !mods[0].IsNone()) {
			return oerrors.NewTemplateError(
				fmt.Sprintf("single-choice category %q must start with the %q module", cat, NoneID), "", nil)
		}

		seen := make(map[string]bool)
		for _, m := range mods {
			if m.ID == "" {
				return oerrors.NewTemplateError(fmt.Sprintf("module with empty id in category %q", cat), "", nil)
			}
			if seen[m.ID] {
				return oerrors.NewTemplateError(fmt.Sprintf("duplicate module id %q in category %q", m.ID, cat), "", nil)
			}
			seen[m.ID] = true

			if cat.MultiChoice() && m.IsNone() {
				return oerrors.NewTemplateError(fmt.Sprintf("multi-choice category %q must not contain %q", cat, NoneID), "", nil)
			}
			if m.Demo != nil {
				if !m.Demo.InsertionPoint.Valid() {
					return oerrors.NewTemplateError(
						fmt.Sprintf("module %q has unknown insertion point %q", m.ID, m.Demo.InsertionPoint), "", nil)
				}
				if m.Demo.SourceDirectory == "" || m.Demo.DestinationDirectory == "" {
					return oerrors.NewTemplateError(fmt.Sprintf("module %q has an incomplete demo", m.ID), "", nil)
				}
			}
			if m.Provider != nil && m.Demo == nil {
				return oerrors.NewTemplateError(fmt.Sprintf("module %q has a provider but no demo", m.ID), "", nil)
			}
		}
	}

	for _, p := range c.presets {
		if _, err := c.resolvePreset(p); err != nil {
			return err
		}
	}
	return nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultModules(), defaultPresets())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

func defaultModules() map[Category][]Module {
	gridDemo := func(source string) *Demo {
		return &Demo{InsertionPoint: InsertionGrid, SourceDirectory: source, DestinationDirectory: "components"}
	}

	return map[Category][]Module{
		CategoryAnimation: {
			none(),
			{
				ID:       "gsap",
				Packages: []string{"gsap", "@gsap/react"},
				Display:  Display{Label: "GSAP", Color: "green", Description: "GreenSock Animation Platform"},
				Docs:     "https://gsap.com/docs/v3/",
				Demo:     gridDemo("animation/gsap"),
			},
			{
				ID:       "motion",
				Packages: []string{"motion"},
				Display:  Display{Label: "motion (framer-motion)", Color: "blue", Description: "A production-grade animation library for React"},
				Docs:     "https://motion.dev/docs/react",
				Demo:     gridDemo("animation/motion"),
			},
			{
				ID:       "react-spring",
				Packages: []string{"@react-spring/web"},
				Display:  Display{Label: "react-spring", Color: "magenta", Description: "Spring-physics first animation library"},
				Docs:     "https://www.react-spring.dev/docs",
				Demo:     gridDemo("animation/reactSpring"),
			},
		},
		CategoryStateManagement: {
			none(),
			{
				ID:       "zustand",
				Packages: []string{"zustand"},
				Display:  Display{Label: "Zustand", Color: "green", Description: "Small, fast and scalable state management"},
				Docs:     "https://zustand.docs.pmnd.rs/",
				Demo:     gridDemo("stateManagement/zustand"),
			},
			{
				ID:       "jotai",
				Packages: []string{"jotai"},
				Display:  Display{Label: "Jotai", Color: "cyan", Description: "Primitive and flexible atomic state"},
				Docs:     "https://jotai.org/docs/introduction",
				Demo:     gridDemo("stateManagement/jotai"),
			},
			{
				ID:       "valtio",
				Packages: []string{"valtio"},
				Display:  Display{Label: "Valtio", Color: "yellow", Description: "Proxy state made simple"},
				Docs:     "https://valtio.dev/docs/introduction/getting-started",
				Demo:     gridDemo("stateManagement/valtio"),
			},
			{
				ID:       "redux",
				Packages: []string{"@reduxjs/toolkit", "react-redux"},
				Display:  Display{Label: "Redux Toolkit", Color: "red", Description: "The official toolset for Redux"},
				Docs:     "https://redux-toolkit.js.org/introduction/getting-started",
				Demo:     gridDemo("stateManagement/rtk"),
				Provider: &Provider{
					Component:       "Provider",
					ComponentSource: "react-redux",
					Store:           "store",
					StoreSource:     "stores/state",
				},
			},
		},
		CategoryThree: {
			none(),
			{
				ID:       "three",
				Packages: []string{"three"},
				Display:  Display{Label: "Vanilla three.js", Color: "magenta", Description: "Plain three.js"},
				Docs:     "https://threejs.org/docs/",
				Demo:     gridDemo("three/vanillaThree"),
			},
			{
				ID:       "react-three-fiber",
				Packages: []string{"three", "@types/three", "@react-three/fiber", "@react-three/drei"},
				Display:  Display{Label: "react-three-fiber", Color: "blue", Description: "React renderer for three.js"},
				Docs:     "https://r3f.docs.pmnd.rs/getting-started/introduction",
				Demo:     gridDemo("three/r3f"),
			},
		},
		CategoryReactThree: {
			{
				ID:       "react-three-postprocessing",
				Packages: []string{"@react-three/postprocessing"},
				Display:  Display{Label: "react-three-postprocessing", Color: "yellow", Description: "Postprocessing effects for R3F"},
				Docs:     "https://react-postprocessing.docs.pmnd.rs/",
			},
			{
				ID:       "leva",
				Packages: []string{"leva"},
				Display:  Display{Label: "leva", Color: "red", Description: "GUI controls for React"},
				Docs:     "https://github.com/pmndrs/leva",
			},
		},
		CategoryCreative: {
			{
				ID:       "lenis",
				Packages: []string{"lenis"},
				Display:  Display{Label: "lenis", Color: "magenta", Description: "Smooth scroll library"},
				Docs:     "https://lenis.darkroom.engineering/",
				Demo: &Demo{
					InsertionPoint:       InsertionEffects,
					SourceDirectory:      "creative/lenis",
					DestinationDirectory: "components",
				},
			},
			{
				ID:       "@use-gesture/react",
				Packages: []string{"@use-gesture/react"},
				Display:  Display{Label: "@use-gesture/react", Color: "green", Description: "Bind mouse and touch gestures to any component"},
				Docs:     "https://use-gesture.netlify.app/",
			},
		},
	}
}
