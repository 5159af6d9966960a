package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/cities/lib/filters"
	"github.com/pescuma/cities/lib/model"
)

const maxDescriptionLength = 40

type ListCmd struct {
	Filter string `short:"f" help:"Only show cities with names matching these globs. Use | for or, & for and, ! to negate."`
	Sort   string `short:"s" help:"Field to sort by: name, id, areas or citizens. Default keeps the stored order."`
	Desc   bool   `help:"Sort in descending order."`
}

func (c *ListCmd) Run(ctx *context) error {
	filter, err := filters.ParseCityFilter(c.Filter)
	if err != nil {
		return err
	}

	cities := filter.Apply(ctx.viewModel().Cities())

	err = filters.SortCities(cities, c.Sort, !c.Desc)
	if err != nil {
		return err
	}

	pc := pluralize.NewClient()

	for _, city := range cities {
		_, _ = fmt.Fprintf(ctx.out, "%-10v %-20v %-8v %v citizens %v\n",
			city.ID(), city.Name(),
			pc.Pluralize("area", len(city.Areas()), true),
			humanize.Comma(int64(filters.TotalCitizens(city))),
			flagsText(city))
	}

	return nil
}

type ShowCmd struct {
	City string `arg:"" help:"Id or name of the city."`
}

func (c *ShowCmd) Run(ctx *context) error {
	city, err := findCity(ctx.viewModel(), c.City)
	if err != nil {
		return err
	}

	printCity(ctx.out, city)

	return nil
}

func printCity(out io.Writer, city *model.City) {
	_, _ = fmt.Fprintf(out, "%v (%v) %v\n", city.Name(), city.ID(), flagsText(city))
	_, _ = fmt.Fprintf(out, "Areas: %v\n", city.CityAreasNames())
	_, _ = fmt.Fprintf(out, "Citizens: %v\n", humanize.Comma(int64(filters.TotalCitizens(city))))

	for _, area := range city.Areas() {
		_, _ = fmt.Fprintf(out, "   %v (%v): %v citizens - %v\n",
			area.Name(), area.ID(),
			humanize.Comma(int64(area.Citizens())),
			truncate.Truncate(area.Description(), maxDescriptionLength, "...", truncate.PositionEnd))
	}
}

func flagsText(city *model.City) string {
	var result []string
	if city.IsPolluted() {
		result = append(result, string(model.Polluted))
	}
	if city.IsCriminal() {
		result = append(result, string(model.Criminal))
	}
	if city.IsIndustrial() {
		result = append(result, string(model.Industrial))
	}

	return "[" + strings.Join(result, ", ") + "]"
}
