package transform

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactcreative/cli/internal/catalog"
	oerrors "github.com/reactcreative/cli/internal/errors"
	"github.com/reactcreative/cli/internal/jsx"
)

const rootUI = `import ReactLogo from '@/assets/react.svg?react';

function App() {
  return (
    <>
      <Effects></Effects>
      <div className="container">
        <ReactLogo width={100} height={100} />
        <Grid></Grid>
      </div>
    </>
  );
}

function Grid({ children }: { children?: React.ReactNode }) {
  return <div className="grid">{children}</div>;
}

function Effects({ children }: { children?: React.ReactNode }) {
  return <>{children}</>;
}

export default App;
`

func demoModule(id string, marker catalog.InsertionPoint, source string) catalog.Module {
	return catalog.Module{
		ID:       id,
		Packages: []string{id},
		Demo: &catalog.Demo{
			InsertionPoint:       marker,
			SourceDirectory:      source,
			DestinationDirectory: "components",
		},
	}
}

func demoFS() fstest.MapFS {
	return fstest.MapFS{
		"src/demo/animation/gsap/AnimationDemo.tsx": {Data: []byte("export default function AnimationDemo() { return <div />; }\n")},
		"src/demo/state/zustand/StateDemo.tsx":      {Data: []byte("import { useStore } from './stores/state';\nexport default function StateDemo() { return <p />; }\n")},
		"src/demo/state/zustand/stores/state.ts":    {Data: []byte("export const useStore = () => 1;\n")},
		"src/demo/creative/lenis/Lenis.tsx":         {Data: []byte("function Lenis() { return null; }\nexport default Lenis;\n")},
		"src/demo/broken/empty/README.md":           {Data: []byte("nothing here")},
		"src/demo/broken/two/A.tsx":                 {Data: []byte("export default function A() {}")},
		"src/demo/broken/two/B.tsx":                 {Data: []byte("export default function B() {}")},
		"src/demo/broken/anon/Anon.tsx":             {Data: []byte("export default () => <div />;")},
	}
}

func TestExtractExportName(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"function declaration", "export default function MyComp() { return <div />; }", "MyComp"},
		{"class declaration", "export default class MyClass extends React.Component { render() { return null; } }", "MyClass"},
		{"identifier re-export", "const Named = () => <div />;\nexport default Named;", "Named"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractExportName([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractExportName_Errors(t *testing.T) {
	_, err := ExtractExportName([]byte("export const a = 1;"))
	assert.ErrorIs(t, err, ErrNoDefaultExport)

	_, err = ExtractExportName([]byte("export default () => null;"))
	assert.ErrorIs(t, err, ErrUnnamedExport)
}

func TestAlias(t *testing.T) {
	assert.Equal(t, "@/components/AnimationDemo", Alias("components", "AnimationDemo.tsx"))
	assert.Equal(t, "@/components/stores/state", Alias("components", "stores/state"))
	assert.Equal(t, "@/components/stores/state", Alias("components", "stores/state.ts"))
	assert.Equal(t, "@/hooks/use.scroll", Alias("hooks", "use.scroll.ts"))
}

func TestBuildPlan(t *testing.T) {
	mods := []catalog.Module{
		demoModule("gsap", catalog.InsertionGrid, "animation/gsap"),
		{ID: "leva", Packages: []string{"leva"}},
		demoModule("zustand", catalog.InsertionGrid, "state/zustand"),
		demoModule("lenis", catalog.InsertionEffects, "creative/lenis"),
	}

	plan, err := BuildPlan(demoFS(), "src/demo", mods)
	require.NoError(t, err)
	require.Len(t, plan.Injections, 3)

	assert.Equal(t, []catalog.InsertionPoint{catalog.InsertionGrid, catalog.InsertionEffects}, plan.Markers())

	grid := plan.ForMarker(catalog.InsertionGrid)
	require.Len(t, grid, 2)
	assert.Equal(t, "AnimationDemo", grid[0].Name)
	assert.Equal(t, "@/components/AnimationDemo", grid[0].Source)
	assert.Equal(t, "<AnimationDemo />", grid[0].Element())
	assert.Equal(t, "StateDemo", grid[1].Name)
	assert.Equal(t, "@/components/StateDemo", grid[1].Source)

	effects := plan.ForMarker(catalog.InsertionEffects)
	require.Len(t, effects, 1)
	assert.Equal(t, "Lenis", effects[0].Name)
}

func TestBuildPlan_FragmentCardinality(t *testing.T) {
	for _, dir := range []string{"broken/empty", "broken/two", "broken/missing"} {
		t.Run(dir, func(t *testing.T) {
			_, err := BuildPlan(demoFS(), "src/demo", []catalog.Module{demoModule("x", catalog.InsertionGrid, dir)})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFragmentCardinality)
			assert.ErrorIs(t, err, oerrors.ErrTemplate)
			assert.Contains(t, err.Error(), "src/demo/"+dir)
		})
	}
}

func TestBuildPlan_UnnamedExport(t *testing.T) {
	_, err := BuildPlan(demoFS(), "src/demo", []catalog.Module{demoModule("anon", catalog.InsertionGrid, "broken/anon")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnnamedExport)
	assert.Contains(t, err.Error(), "Anon.tsx")
}

func TestApplyRootUI(t *testing.T) {
	plan, err := BuildPlan(demoFS(), "src/demo", []catalog.Module{
		demoModule("gsap", catalog.InsertionGrid, "animation/gsap"),
		demoModule("zustand", catalog.InsertionGrid, "state/zustand"),
		demoModule("lenis", catalog.InsertionEffects, "creative/lenis"),
	})
	require.NoError(t, err)

	out, err := ApplyRootUI([]byte(rootUI), plan)
	require.NoError(t, err)
	got := string(out)

	assert.True(t, strings.HasPrefix(got, `import ReactLogo from '@/assets/react.svg?react';
import AnimationDemo from '@/components/AnimationDemo';
import StateDemo from '@/components/StateDemo';
import Lenis from '@/components/Lenis';

function App() {`), got)

	assert.Contains(t, got, "      <Effects>\n        <Lenis />\n      </Effects>\n")
	assert.Contains(t, got, "        <Grid>\n          <AnimationDemo />\n          <StateDemo />\n        </Grid>\n")
	assert.Contains(t, got, "export default App;\n")
}

func TestApplyRootUI_DuplicateImportSuppressed(t *testing.T) {
	src := strings.Replace(rootUI,
		"import ReactLogo from '@/assets/react.svg?react';",
		"import ReactLogo from '@/assets/react.svg?react';\nimport AnimationDemo from '@/components/AnimationDemo';", 1)

	plan := &Plan{Injections: []Injection{
		{ModuleID: "gsap", Marker: catalog.InsertionGrid, Name: "AnimationDemo", Source: "@/components/AnimationDemo"},
		{ModuleID: "alias", Marker: catalog.InsertionGrid, Name: "AnimationDemo", Source: "@/components/AnimationDemo"},
	}}

	out, err := ApplyRootUI([]byte(src), plan)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(out), "from '@/components/AnimationDemo'"))
}

func TestApplyRootUI_DuplicateWithinPlan(t *testing.T) {
	plan := &Plan{Injections: []Injection{
		{ModuleID: "a", Marker: catalog.InsertionGrid, Name: "Shared", Source: "@/components/Shared"},
		{ModuleID: "b", Marker: catalog.InsertionEffects, Name: "Shared", Source: "@/components/Shared"},
	}}

	out, err := ApplyRootUI([]byte(rootUI), plan)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "import Shared from"))
}

func TestApplyRootUI_MissingMarker(t *testing.T) {
	src := strings.Replace(rootUI, "<Effects></Effects>", "", 1)
	plan := &Plan{Injections: []Injection{
		{ModuleID: "lenis", Marker: catalog.InsertionEffects, Name: "Lenis", Source: "@/components/Lenis"},
	}}

	_, err := ApplyRootUI([]byte(src), plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMarkerNotFound)
	assert.ErrorIs(t, err, oerrors.ErrTemplate)
	assert.Contains(t, err.Error(), "lenis")
}

func TestApplyRootUI_EmptyPlan(t *testing.T) {
	out, err := ApplyRootUI([]byte(rootUI), &Plan{})
	require.NoError(t, err)
	assert.Equal(t, rootUI, string(out))
}

func TestApplyRootUI_RepeatedMarkers(t *testing.T) {
	src := "const a = (\n  <main>\n    <Grid></Grid>\n    <Grid>\n      <Grid />\n    </Grid>\n  </main>\n);\n"
	plan := &Plan{Injections: []Injection{{ModuleID: "x", Marker: catalog.InsertionGrid, Name: "X", Source: "@/components/X"}}}

	out, err := ApplyRootUI([]byte(src), plan)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(out), "<X />"), "every Grid receives the element, nested ones included")

	for _, src := range []string{
		"const a = <main><Grid><Grid></Grid></Grid></main>;\n",
		"const a = <main><Grid><Grid /></Grid></main>;\n",
	} {
		out, err := ApplyRootUI([]byte(src), plan)
		require.NoError(t, err, src)
		assert.Equal(t, 2, strings.Count(string(out), "<X />"), src)
		_, err = jsx.Parse(out)
		assert.NoError(t, err, "output stays parseable")
	}
}

func TestInsertTagChildren(t *testing.T) {
	got, err := InsertTagChildren("<Grid>\n  <Existing/>\n</Grid>", "Grid", []string{"<A/>", "<B/>"})
	require.NoError(t, err)
	assert.Equal(t, "<Grid>\n  <Existing/>\n  <A/>\n  <B/>\n</Grid>", got)

	_, err = InsertTagChildren("<Header />", "Grid", []string{"<A/>"})
	assert.ErrorIs(t, err, ErrMarkerNotFound)
}

const mainTSX = `import { StrictMode } from 'react';
import { createRoot } from 'react-dom/client';
import './index.css';
import App from './App.tsx';

createRoot(document.getElementById('root')!).render(
  <StrictMode>
    <App />
  </StrictMode>,
);
`

var reduxProvider = catalog.Provider{
	Component:       "Provider",
	ComponentSource: "react-redux",
	Store:           "store",
	StoreSource:     "stores/state",
}

func TestApplyBootstrap(t *testing.T) {
	out, err := ApplyBootstrap([]byte(mainTSX), reduxProvider, "@/components/stores/state")
	require.NoError(t, err)

	want := `import { StrictMode } from 'react';
import { createRoot } from 'react-dom/client';
import './index.css';
import App from './App.tsx';
import { Provider } from 'react-redux';
import { store } from '@/components/stores/state';

createRoot(document.getElementById('root')!).render(
  <StrictMode>
    <Provider store={store}>
      <App />
    </Provider>
  </StrictMode>,
);
`
	assert.Equal(t, want, string(out))

	again, err := ApplyBootstrap(out, reduxProvider, "@/components/stores/state")
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again), "already wrapped roots are left alone")
}

func TestApplyBootstrap_ExistingBindings(t *testing.T) {
	src := strings.Replace(mainTSX, "import App from './App.tsx';",
		"import App from './App.tsx';\nimport { Provider } from 'react-redux';\n\nconst store = makeStore();", 1)

	out, err := ApplyBootstrap([]byte(src), reduxProvider, "@/components/stores/state")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(out), "import { Provider }"))
	assert.NotContains(t, string(out), "@/components/stores/state", "a local store is not imported")
	assert.Contains(t, string(out), "<Provider store={store}>")
}

func TestApplyBootstrap_EntryPointMissing(t *testing.T) {
	src := strings.Replace(mainTSX, "<App />", "<Root />", 1)
	_, err := ApplyBootstrap([]byte(src), reduxProvider, "@/components/stores/state")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryPointNotFound)
	assert.ErrorIs(t, err, oerrors.ErrTemplate)
}

func TestStoreAlias(t *testing.T) {
	redux, ok := catalog.Default().Find(catalog.CategoryStateManagement, "redux")
	require.True(t, ok)
	assert.Equal(t, "@/components/stores/state", StoreAlias(redux))
}
