package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
	"github.com/pescuma/cities/lib/workspace"
)

type cliArgs struct {
	Workspace  string `short:"w" env:"CITIES_WORKSPACE" help:"File to store data. Default is ./.cities/cities.sqlite or ~/.cities/cities.sqlite if ./.cities does not exist. Use :memory: or mem:// for a throwaway workspace."`
	Seed       string `env:"CITIES_SEED" type:"existingfile" help:"YAML or JSON file with the cities to use when the workspace is empty."`
	IDStrategy string `name:"id-strategy" default:"counter" enum:"counter,shortid" help:"How new ids are generated (${enum})."`
	Verbose    bool   `short:"v" help:"Show debug messages."`

	List ListCmd `cmd:"" help:"List cities."`
	Show ShowCmd `cmd:"" help:"Show a city and its areas."`

	City struct {
		Add    CityAddCmd    `cmd:"" help:"Add a new city."`
		Edit   CityEditCmd   `cmd:"" help:"Change a city."`
		Delete CityDeleteCmd `cmd:"" help:"Delete a city."`
		Toggle CityToggleCmd `cmd:"" help:"Flip one of the city flags (polluted, criminal, industrial)."`
	} `cmd:""`

	Area struct {
		Add    AreaAddCmd    `cmd:"" help:"Add a new area to a city."`
		Edit   AreaEditCmd   `cmd:"" help:"Change an area."`
		Delete AreaDeleteCmd `cmd:"" help:"Delete an area."`
	} `cmd:""`

	Export ExportCmd `cmd:"" help:"Write all cities as JSON."`
	Serve  ServeCmd  `cmd:"" help:"Start the HTTP API."`
}

type context struct {
	ws        *workspace.Workspace
	console   consoles.Console
	presenter *consolePresenter
	out       io.Writer

	vm *viewmodel.ViewModel
}

func (c *context) viewModel() *viewmodel.ViewModel {
	if c.vm == nil {
		c.vm = c.ws.LoadViewModel(c.presenter)
	}
	return c.vm
}

func (c *context) close() error {
	if c.vm != nil {
		c.vm.Close()
	}
	return c.ws.Close()
}

func newContext(args *cliArgs, in io.Reader, out io.Writer) (*context, error) {
	console := consoles.NewConsole(out, args.Verbose)

	ws, err := workspace.NewWorkspace(&workspace.Options{
		File:       args.Workspace,
		SeedFile:   args.Seed,
		IDStrategy: model.IDStrategy(args.IDStrategy),
		Console:    console,
	})
	if err != nil {
		return nil, err
	}

	return &context{
		ws:        ws,
		console:   console,
		presenter: newConsolePresenter(in, out, console),
		out:       out,
	}, nil
}

func main() {
	var args cliArgs
	ctx := kong.Parse(&args, kong.ShortUsageOnError())

	c, err := newContext(&args, os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(c)
	cerr := c.close()
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(cerr)
}
