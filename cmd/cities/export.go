package main

import (
	"os"
)

type ExportCmd struct {
	Output string `short:"o" type:"path" help:"File to write to. Default is the standard output."`
}

func (c *ExportCmd) Run(ctx *context) error {
	data, err := ctx.ws.Export(ctx.viewModel())
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = ctx.out.Write(append(data, '\n'))
		return err
	}

	ctx.console.Printf("Writing %v\n", c.Output)

	return os.WriteFile(c.Output, data, 0o600)
}
