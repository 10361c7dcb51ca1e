// Package catalog defines the optional library modules a project can be
// scaffolded with, the presets that bundle them, and the user's selection.
package catalog

// Category groups modules that answer the same prompt.
type Category string

// Known categories, in prompt order.
const (
	CategoryAnimation       Category = "animation"
	CategoryStateManagement Category = "stateManagement"
	CategoryThree           Category = "three"
	CategoryReactThree      Category = "reactThree"
	CategoryCreative        Category = "creative"
)

// Categories returns every category in prompt order.
func Categories() []Category {
	return []Category{
		CategoryAnimation,
		CategoryStateManagement,
		CategoryThree,
		CategoryReactThree,
		CategoryCreative,
	}
}

// MultiChoice reports whether zero or more modules may be chosen.
func (c Category) MultiChoice() bool {
	return c == CategoryReactThree || c == CategoryCreative
}

// Title returns the human-readable category name.
func (c Category) Title() string {
	switch c {
	case CategoryAnimation:
		return "Animation"
	case CategoryStateManagement:
		return "State management"
	case CategoryThree:
		return "3D"
	case CategoryReactThree:
		return "React Three helpers"
	case CategoryCreative:
		return "Creative tools"
	default:
		return string(c)
	}
}

// InsertionPoint names a marker element in the root UI file.
type InsertionPoint string

// Known insertion points.
const (
	InsertionGrid    InsertionPoint = "GRID"
	InsertionEffects InsertionPoint = "EFFECTS"
)

// InsertionPoints returns every insertion point in render order.
func InsertionPoints() []InsertionPoint {
	return []InsertionPoint{InsertionEffects, InsertionGrid}
}

// Element returns the JSX tag name of the marker.
func (p InsertionPoint) Element() string {
	switch p {
	case InsertionGrid:
		return "Grid"
	case InsertionEffects:
		return "Effects"
	default:
		return ""
	}
}

// Valid reports whether p is a known insertion point.
func (p InsertionPoint) Valid() bool {
	return p.Element() != ""
}

// NoneID is the id of the "no selection" sentinel module.
const NoneID = "none"

// Display holds presentation-only metadata.
type Display struct {
	Label       string
	Color       string
	Hint        string
	Description string
}

// Demo describes a demo fragment shipped with the template.
type Demo struct {
	// InsertionPoint is the marker the fragment's component is rendered under.
	InsertionPoint InsertionPoint

	// SourceDirectory is relative to the template's demo root.
	SourceDirectory string

	// DestinationDirectory is relative to the project's src directory.
	DestinationDirectory string
}

// Provider describes a top-level provider element that must wrap the
// application in the bootstrap file.
type Provider struct {
	// Component is the provider element name, imported from ComponentSource.
	Component       string
	ComponentSource string

	// Store is the store binding, imported from StoreSource. StoreSource is
	// relative to the module's demo destination directory.
	Store       string
	StoreSource string
}

// Module is one optional library choice.
type Module struct {
	ID       string
	Packages []string
	Display  Display

	// Docs is the upstream documentation URL.
	Docs string

	Demo     *Demo
	Provider *Provider
}

// IsNone reports whether m is the "no selection" sentinel.
func (m Module) IsNone() bool {
	return m.ID == NoneID
}

// HasDemo reports whether m contributes a demo fragment.
func (m Module) HasDemo() bool {
	return m.Demo != nil
}

// clone returns a copy of m that shares no mutable state with it.
func (m Module) clone() Module {
	out := m
	out.Packages = append([]string(nil), m.Packages...)
	if m.Demo != nil {
		d := *m.Demo
		out.Demo = &d
	}
	if m.Provider != nil {
		p := *m.Provider
		out.Provider = &p
	}
	return out
}

func none() Module {
	return Module{
		ID:      NoneID,
		Display: Display{Label: "none", Color: "gray"},
	}
}
