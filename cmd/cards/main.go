package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	New     NewCmd     `cmd:"" help:"Generate a fresh deck"`
	Shuffle ShuffleCmd `cmd:"" help:"Shuffle a deck read from stdin"`
	Sort    SortCmd    `cmd:"" help:"Sort a deck read from stdin"`
	Deal    DealCmd    `cmd:"" help:"Deal cards off a deck read from stdin"`
	Show    ShowCmd    `cmd:"" help:"Pretty-print a deck read from stdin"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cards"),
		kong.Description("Build, shuffle, sort and deal decks of playing cards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	logger := setupLogger(cli.Debug)
	err := ctx.Run(&logger)
	ctx.FatalIfErrorf(err)
}

// setupLogger configures zerolog with pretty console output
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
