package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/snaphire/internal/buildinfo"
	"github.com/dmitrijs2005/snaphire/internal/client/cli"
	"github.com/dmitrijs2005/snaphire/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
