package main

import (
	appfx "github.com/arpitsharma-bit/peextrap/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
