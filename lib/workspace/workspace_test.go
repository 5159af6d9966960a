package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

type acceptAll struct{}

func (acceptAll) ShowEditor(viewmodel.Editor, string) {}
func (acceptAll) HideEditor(viewmodel.Editor)         {}
func (acceptAll) Alert(string)                        {}
func (acceptAll) Confirm(string) bool                 { return true }

func TestWorkspaceUsesDefaultSeed(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(&Options{File: "mem://", Console: consoles.NewNullConsole()})
	require.NoError(t, err)
	defer ws.Close()

	vm := ws.LoadViewModel(acceptAll{})

	require.Len(t, vm.Cities(), 1)
	assert.Equal(t, "Cheese", vm.Cities()[0].Name())
	assert.Equal(t, "Cheese1, Cheese3", vm.Cities()[0].CityAreasNames())
}

func TestWorkspacePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "data", "cities.sqlite")
	opts := &Options{File: file, Console: consoles.NewNullConsole()}

	ws, err := NewWorkspace(opts)
	require.NoError(t, err)

	vm := ws.LoadViewModel(acceptAll{})
	vm.AddCity()
	vm.CityDraft().SetName("Gouda")
	require.NoError(t, vm.AcceptCity())
	require.NoError(t, ws.Close())

	ws, err = NewWorkspace(opts)
	require.NoError(t, err)
	defer ws.Close()

	vm = ws.LoadViewModel(acceptAll{})

	require.Len(t, vm.Cities(), 2)
	assert.Equal(t, "Gouda", vm.Cities()[1].Name())
	assert.Equal(t, "city1", vm.Cities()[1].ID())
}

func TestWorkspaceSeedFile(t *testing.T) {
	t.Parallel()

	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`
- name: Brie
  isIndustrial: false
  cityAreas:
    - name: North
      citizens: "12"
`), 0o600))

	ws, err := NewWorkspace(&Options{File: ":memory:", SeedFile: seed, IDStrategy: model.ShortIDs, Console: consoles.NewNullConsole()})
	require.NoError(t, err)
	defer ws.Close()

	vm := ws.LoadViewModel(acceptAll{})

	require.Len(t, vm.Cities(), 1)
	c := vm.Cities()[0]
	assert.Equal(t, "Brie", c.Name())
	assert.False(t, c.IsIndustrial())
	assert.Equal(t, 12, c.Areas()[0].Citizens())
	assert.Equal(t, "Area description", c.Areas()[0].Description())
	assert.NotEqual(t, "city0", c.ID())
}

func TestWorkspaceErrors(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspace(&Options{File: "cities.txt", Console: consoles.NewNullConsole()})
	assert.Error(t, err)

	_, err = NewWorkspace(&Options{File: "mem://", IDStrategy: "uuid", Console: consoles.NewNullConsole()})
	assert.Error(t, err)

	_, err = NewWorkspace(&Options{File: "mem://", SeedFile: "missing.yaml", Console: consoles.NewNullConsole()})
	assert.Error(t, err)
}

func TestLoadSeedJson(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seed := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seed, []byte(`[{"name":"Edam","cityAreas":[{"name":"a","citizens":3}]}]`), 0o600))

	data, err := LoadSeed(seed)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "Edam", data[0].Name)
	assert.Equal(t, model.Citizens(3), data[0].CityAreas[0].Citizens)

	other := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(other, []byte(`x = 1`), 0o600))

	_, err = LoadSeed(other)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(&Options{File: "mem://", Console: consoles.NewNullConsole()})
	require.NoError(t, err)

	content, err := ws.Export(ws.LoadViewModel(acceptAll{}))
	require.NoError(t, err)

	assert.Contains(t, string(content), `"name": "Cheese"`)
	assert.Contains(t, string(content), `"cityAreasNames": "Cheese1, Cheese3"`)
}
