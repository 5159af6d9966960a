package main

import (
	"fmt"
)

type AreaAddCmd struct {
	City        string `arg:"" help:"Id or name of the city."`
	Name        string `arg:"" optional:"" help:"Name of the area. Default is New area."`
	Description string `short:"d" help:"Description of the area."`
	Citizens    int    `short:"c" help:"Number of citizens."`
}

func (c *AreaAddCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	vm.AddArea(city)

	draft := vm.AreaDraft()
	if c.Name != "" {
		draft.SetName(c.Name)
	}
	if c.Description != "" {
		draft.SetDescription(c.Description)
	}
	draft.SetCitizens(c.Citizens)

	err = vm.AcceptArea()
	if err != nil {
		vm.RevertItem()
		return err
	}

	_, _ = fmt.Fprintf(ctx.out, "Added %v (%v) to %v\n", draft.Name(), draft.ID(), city.Name())
	return nil
}

type AreaEditCmd struct {
	City        string `arg:"" help:"Id or name of the city."`
	Area        string `arg:"" help:"Id or name of the area."`
	Name        string `help:"New name."`
	Description string `short:"d" help:"New description."`
	Citizens    string `short:"c" help:"New number of citizens."`
}

func (c *AreaEditCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	area, err := findArea(city, c.Area)
	if err != nil {
		return err
	}

	citizens, err := parseOptionalInt("citizens", c.Citizens)
	if err != nil {
		return err
	}

	vm.SelectArea(area)

	draft := vm.AreaDraft()
	if c.Name != "" {
		draft.SetName(c.Name)
	}
	if c.Description != "" {
		draft.SetDescription(c.Description)
	}
	if citizens != nil {
		draft.SetCitizens(*citizens)
	}

	err = vm.AcceptArea()
	if err != nil {
		vm.RevertItem()
		return err
	}

	printCity(ctx.out, city)
	return nil
}

type AreaDeleteCmd struct {
	City string `arg:"" help:"Id or name of the city."`
	Area string `arg:"" help:"Id or name of the area."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *AreaDeleteCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	area, err := findArea(city, c.Area)
	if err != nil {
		return err
	}

	ctx.presenter.yes = c.Yes

	if vm.DeleteArea(city, area) {
		_, _ = fmt.Fprintf(ctx.out, "Deleted %v (%v) from %v\n", area.Name(), area.ID(), city.Name())
	}

	return nil
}
