package main

import (
	"fmt"

	"github.com/pescuma/cities/lib/model"
)

type CityAddCmd struct {
	Name          string `arg:"" optional:"" help:"Name of the city. Default is New City."`
	Polluted      bool   `help:"Mark the city as polluted."`
	Criminal      bool   `help:"Mark the city as criminal."`
	NotIndustrial bool   `help:"Mark the city as not industrial."`
}

func (c *CityAddCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	vm.AddCity()

	draft := vm.CityDraft()
	if c.Name != "" {
		draft.SetName(c.Name)
	}
	draft.SetPolluted(c.Polluted)
	draft.SetCriminal(c.Criminal)
	draft.SetIndustrial(!c.NotIndustrial)

	err := vm.AcceptCity()
	if err != nil {
		vm.RevertItem()
		return err
	}

	_, _ = fmt.Fprintf(ctx.out, "Added %v (%v)\n", draft.Name(), draft.ID())
	return nil
}

type CityEditCmd struct {
	City       string `arg:"" help:"Id or name of the city."`
	Name       string `help:"New name."`
	Polluted   string `help:"true or false."`
	Criminal   string `help:"true or false."`
	Industrial string `help:"true or false."`
}

func (c *CityEditCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	flags := map[model.Flag]string{
		model.Polluted:   c.Polluted,
		model.Criminal:   c.Criminal,
		model.Industrial: c.Industrial,
	}

	values := map[model.Flag]*bool{}
	for flag, text := range flags {
		values[flag], err = parseOptionalBool(string(flag), text)
		if err != nil {
			return err
		}
	}

	vm.SelectCity(city)

	draft := vm.CityDraft()
	if c.Name != "" {
		draft.SetName(c.Name)
	}
	for flag, v := range values {
		if v != nil {
			draft.SetFlag(flag, *v)
		}
	}

	err = vm.AcceptCity()
	if err != nil {
		vm.RevertItem()
		return err
	}

	printCity(ctx.out, city)
	return nil
}

type CityDeleteCmd struct {
	City string `arg:"" help:"Id or name of the city."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *CityDeleteCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	ctx.presenter.yes = c.Yes

	if vm.DeleteCity(city) {
		_, _ = fmt.Fprintf(ctx.out, "Deleted %v (%v)\n", city.Name(), city.ID())
	}

	return nil
}

type CityToggleCmd struct {
	City string `arg:"" help:"Id or name of the city."`
	Flag string `arg:"" help:"polluted, criminal or industrial."`
}

func (c *CityToggleCmd) Run(ctx *context) error {
	vm := ctx.viewModel()

	city, err := findCity(vm, c.City)
	if err != nil {
		return err
	}

	flag, err := model.ParseFlag(c.Flag)
	if err != nil {
		return err
	}

	vm.SelectCity(city)

	err = vm.ToggleDraftFlag(flag)
	if err != nil {
		return err
	}

	err = vm.AcceptCity()
	if err != nil {
		vm.RevertItem()
		return err
	}

	printCity(ctx.out, city)
	return nil
}
