package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Classify  ClassifyCmd      `cmd:"" help:"Classify a hand of cards"`
	Compare   CompareCmd       `cmd:"" help:"Compare two hands and report the winner"`
	Scenarios ScenariosCmd     `cmd:"" help:"Run a scenario file of matchups"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Classify poker hands and decide winners"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
