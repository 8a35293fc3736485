package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/appengine-ltd/secret-cult/internal/config"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	config.Config
	ShowVersion bool
}

// parseOptions layers command-line flags over the environment.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	cfg, err := config.Load()
	if err != nil {
		return options{}, err
	}
	opts := options{Config: cfg}

	fs := flag.NewFlagSet("secret-cult", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")
	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&opts.Classic, "classic", opts.Classic, "use the terminal interface")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile, "write logs to this file")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := opts.Config.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid flags: %w", err)
	}
	return opts, nil
}
