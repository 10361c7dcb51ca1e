package catalog

import (
	"fmt"
	"strings"

	oerrors "github.com/reactcreative/cli/internal/errors"
)

// Selection is the resolved configuration for one scaffolding run.
// Single-choice categories hold the none sentinel when nothing is chosen.
type Selection struct {
	Animation       Module
	StateManagement Module
	Three           Module
	ReactThree      []Module
	Creative        []Module
}

// Choices is a selection expressed as module ids. Empty single-choice ids
// mean none.
type Choices struct {
	Animation       string
	StateManagement string
	Three           string
	ReactThree      []string
	Creative        []string
}

// Entry is one category of a selection.
type Entry struct {
	Category Category
	Modules  []Module
}

// Resolve turns module ids into a normalized selection. Unknown ids are
// validation errors.
func (c *Catalog) Resolve(ch Choices) (Selection, error) {
	single := func(cat Category, id string) (Module, error) {
		if id == "" {
			id = NoneID
		}
		m, ok := c.Find(cat, id)
		if !ok {
			return Module{}, unknownModule(cat, id)
		}
		return m, nil
	}
	multi := func(cat Category, ids []string) ([]Module, error) {
		var out []Module
		seen := make(map[string]bool)
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			m, ok := c.Find(cat, id)
			if !ok {
				return nil, unknownModule(cat, id)
			}
			out = append(out, m)
		}
		return out, nil
	}

	var (
		sel Selection
		err error
	)
	if sel.Animation, err = single(CategoryAnimation, ch.Animation); err != nil {
		return Selection{}, err
	}
	if sel.StateManagement, err = single(CategoryStateManagement, ch.StateManagement); err != nil {
		return Selection{}, err
	}
	if sel.Three, err = single(CategoryThree, ch.Three); err != nil {
		return Selection{}, err
	}
	if sel.ReactThree, err = multi(CategoryReactThree, ch.ReactThree); err != nil {
		return Selection{}, err
	}
	if sel.Creative, err = multi(CategoryCreative, ch.Creative); err != nil {
		return Selection{}, err
	}
	return sel.Normalize(), nil
}

// Empty returns a selection with nothing chosen.
func (c *Catalog) Empty() Selection {
	sel, _ := c.Resolve(Choices{})
	return sel
}

func unknownModule(cat Category, id string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("unknown %s module %q", cat.Title(), id),
		"",
		"Run 'create-react-creative list' to see available modules",
	)
}

// Normalize returns a copy of s with ReactThree cleared unless the 3D
// choice is react-three-fiber.
func (s Selection) Normalize() Selection {
	out := s
	if s.Three.ID != "react-three-fiber" {
		out.ReactThree = nil
	}
	return out
}

// Entries returns the selection grouped by category, in category order.
func (s Selection) Entries() []Entry {
	return []Entry{
		{Category: CategoryAnimation, Modules: []Module{s.Animation}},
		{Category: CategoryStateManagement, Modules: []Module{s.StateManagement}},
		{Category: CategoryThree, Modules: []Module{s.Three}},
		{Category: CategoryReactThree, Modules: s.ReactThree},
		{Category: CategoryCreative, Modules: s.Creative},
	}
}

// Flatten returns the chosen modules in category order, dropping none
// sentinels and zero-value modules.
func (s Selection) Flatten() []Module {
	var out []Module
	for _, e := range s.Entries() {
		for _, m := range e.Modules {
			if m.ID == "" || m.IsNone() {
				continue
			}
			out = append(out, m)
		}
	}
	return out
}

// Packages returns the deduplicated packages of every chosen module.
func (s Selection) Packages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range s.Flatten() {
		for _, p := range m.Packages {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// ProviderModule returns the first chosen module that requires a provider
// wrapper in the bootstrap file.
func (s Selection) ProviderModule() (Module, bool) {
	for _, m := range s.Flatten() {
		if m.Provider != nil {
			return m, true
		}
	}
	return Module{}, false
}

// Validate checks that every chosen module belongs to its category in cat.
func (s Selection) Validate(cat *Catalog) error {
	for _, e := range s.Entries() {
		if !e.Category.MultiChoice() && len(e.Modules) == 1 && e.Modules[0].ID == "" {
			continue
		}
		for _, m := range e.Modules {
			if _, ok := cat.Find(e.Category, m.ID); !ok {
				return unknownModule(e.Category, m.ID)
			}
		}
	}
	if s.Three.ID != "react-three-fiber" && len(s.ReactThree) > 0 {
		return oerrors.NewValidationError(
			"React Three helpers require react-three-fiber",
			"",
			"Choose react-three-fiber as the 3D library or drop the helpers",
		)
	}
	return nil
}

// SummaryLine is one labeled line of the configuration summary.
type SummaryLine struct {
	Category Category
	Value    string
}

// Summary returns one line per category listing the chosen module labels,
// or "None" when nothing is chosen.
func (s Selection) Summary() []SummaryLine {
	var lines []SummaryLine
	for _, e := range s.Entries() {
		var labels []string
		for _, m := range e.Modules {
			if m.ID == "" || m.IsNone() {
				continue
			}
			labels = append(labels, m.Display.Label)
		}
		value := "None"
		if len(labels) > 0 {
			value = strings.Join(labels, ", ")
		}
		lines = append(lines, SummaryLine{Category: e.Category, Value: value})
	}
	return lines
}
