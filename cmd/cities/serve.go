package main

import (
	"github.com/pescuma/cities/lib/server"
)

type ServeCmd struct {
	Port uint `default:"2428" help:"Port to listen to."`
}

func (c *ServeCmd) Run(ctx *context) error {
	return server.Run(ctx.console, ctx.ws, &server.Options{
		Port: c.Port,
	})
}
