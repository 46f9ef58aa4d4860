package main

import (
	"github.com/alecthomas/kong"

	"github.com/flume-lang/flume/common"
)

func main() {
	common.AutoColor()
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("flume"),
		kong.Description("Flume CLI"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Check   CheckCmd   `cmd:"" help:"Check the project manifest."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
