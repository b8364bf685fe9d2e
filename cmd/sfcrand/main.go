package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Output  OutputCmd        `cmd:"" help:"Write raw random bytes to stdout"`
	Random  RandomCmd        `cmd:"" help:"Print a single random word in hex"`
	Resume  ResumeCmd        `cmd:"" help:"Continue a stream from a saved state file"`
	Batch   BatchCmd         `cmd:"" help:"Run bulk generation jobs from an HCL config"`
	Stats   StatsCmd         `cmd:"" help:"Summarise the empirical distribution of a stream"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sfcrand"),
		kong.Description("Small Fast Chaotic (SFC) random number toolkit"),
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
