package transform

import (
	"fmt"

	"github.com/reactcreative/cli/internal/catalog"
	"github.com/reactcreative/cli/internal/jsx"
)

const (
	// BootstrapFile renders the application, relative to the project root.
	BootstrapFile = "src/main.tsx"

	// EntryPoint is the element name of the application root.
	EntryPoint = "App"
)

// StoreAlias returns the import source of the provider's store for a module.
func StoreAlias(m catalog.Module) string {
	return Alias(m.Demo.DestinationDirectory, m.Provider.StoreSource)
}

// ApplyBootstrap wraps the application root element in the provider and
// imports the provider component and store unless they are already bound.
// A root already wrapped in the provider is left alone.
func ApplyBootstrap(src []byte, provider catalog.Provider, storeSource string) ([]byte, error) {
	f, err := jsx.Parse(src)
	if err != nil {
		return nil, templateError(ErrSyntax, err.Error(), BootstrapFile, nil)
	}

	roots := f.FindAll(EntryPoint)
	if len(roots) == 0 {
		return nil, templateError(ErrEntryPointNotFound,
			fmt.Sprintf("no <%s> element to wrap in <%s>", EntryPoint, provider.Component),
			BootstrapFile, nil)
	}
	root := roots[0]

	if root.Parent != nil && root.Parent.Name == provider.Component {
		return src, nil
	}

	ed := jsx.NewEditor(f)

	var specs []jsx.ImportSpec
	if !f.Imported(provider.ComponentSource, provider.Component) {
		specs = append(specs, jsx.ImportSpec{Named: []string{provider.Component}, Source: provider.ComponentSource})
	}
	// A store declared in the bootstrap file itself is used as is.
	if !f.Imported(storeSource, provider.Store) && !f.HasDecl(provider.Store) {
		specs = append(specs, jsx.ImportSpec{Named: []string{provider.Store}, Source: storeSource})
	}
	ed.AddImports(specs)

	open := fmt.Sprintf("<%s store={%s}>", provider.Component, provider.Store)
	ed.Wrap(root, open, "</"+provider.Component+">")

	out, err := ed.Bytes()
	if err != nil {
		return nil, templateError(ErrSyntax, err.Error(), BootstrapFile, nil)
	}
	return out, nil
}
