package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/persistence"
	"github.com/pescuma/cities/lib/storages"
	"github.com/pescuma/cities/lib/storages/memory"
	"github.com/pescuma/cities/lib/storages/orm"
	"github.com/pescuma/cities/lib/utils"
	"github.com/pescuma/cities/lib/viewmodel"
)

type Options struct {
	// File is where data is stored. Empty means ./.cities/cities.sqlite if
	// ./.cities exists, else ~/.cities/cities.sqlite.
	File       string
	SeedFile   string
	IDStrategy model.IDStrategy
	Console    consoles.Console
}

type Workspace struct {
	console consoles.Console
	storage storages.Storage
	bridge  *persistence.Bridge
	ids     *model.IDs
	seed    []model.CityData
}

func NewWorkspace(opts *Options) (*Workspace, error) {
	if opts == nil {
		opts = &Options{}
	}

	console := opts.Console
	if console == nil {
		console = consoles.NewStdOutConsole(false)
	}

	ids, err := model.NewIDs(opts.IDStrategy)
	if err != nil {
		return nil, err
	}

	seed := DefaultSeed()
	if opts.SeedFile != "" {
		seed, err = LoadSeed(opts.SeedFile)
		if err != nil {
			return nil, err
		}
	}

	storage, err := openStorage(opts.File, console)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
		bridge:  persistence.NewBridge(storage, console),
		ids:     ids,
		seed:    seed,
	}, nil
}

func openStorage(file string, console consoles.Console) (storages.Storage, error) {
	if file == "" {
		local, err := utils.FileExists("./.cities")
		if err != nil {
			return nil, err
		}

		file = utils.IIf(local, "./.cities/cities.sqlite", "~/.cities/cities.sqlite")
	}

	switch {
	case file == "mem://":
		return memory.NewStorage(), nil

	case file == ":memory:":
		return orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err := utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(file, console)
		if err != nil {
			return nil, err
		}

		console.Debugf("Using workspace %v\n", file)

		return orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
}

func createWorkspaceDir(file string, console consoles.Console) error {
	path := filepath.Dir(file)

	exists, err := utils.FileExists(path)
	if err != nil {
		return err
	}

	if !exists {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

// LoadViewModel loads the cities (falling back to the seed) and returns a
// view-model that saves every change back to storage.
func (w *Workspace) LoadViewModel(presenter viewmodel.Presenter) *viewmodel.ViewModel {
	cities := w.bridge.Load(w.ids, w.seed)

	return viewmodel.New(cities, w.bridge, presenter, w.console)
}

func (w *Workspace) Export(vm *viewmodel.ViewModel) ([]byte, error) {
	return persistence.Export(vm.Collection())
}
