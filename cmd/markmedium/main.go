package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/alexflint/markmedium/medium"
	"github.com/alexflint/markmedium/publisher"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type args struct {
	Init    *initArgs    `arg:"subcommand" help:"set up with your integration token"`
	Publish *publishArgs `arg:"subcommand" help:"publish markdown content on your Medium blog"`

	Config  string `arg:"--config,env:MARKMEDIUM_CONFIG" help:"path to the credentials file [default: ~/.markmedium]"`
	API     string `arg:"--api,env:MEDIUM_API_URL" help:"root URL of the Medium API"`
	Verbose bool   `arg:"-v,--verbose" help:"print debug logs"`
}

func (args) Description() string {
	return "Publish Medium articles from markdown content"
}

func (a *args) options(log *zerolog.Logger) publisher.Options {
	return publisher.Options{
		ConfigPath: a.Config,
		APIURL:     a.API,
		Log:        log,
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	ctx := context.Background()

	// a .env file is optional, it just provides defaults for the env-backed flags
	_ = godotenv.Load()

	var args args
	args.API = medium.DefaultBaseURL
	p := arg.MustParse(&args)

	log := newLogger(args.Verbose)

	var err error
	switch {
	case args.Init != nil:
		err = runInit(ctx, args.Init, args.options(&log))
	case args.Publish != nil:
		err = runPublish(ctx, args.Publish, args.options(&log), log)
	default:
		p.Fail("you must specify a subcommand")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
