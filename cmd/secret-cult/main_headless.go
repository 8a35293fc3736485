//go:build !cgo

package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/secret-cult/internal/config"
	"github.com/appengine-ltd/secret-cult/internal/ui"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		config.Exitf("%v", err)
	}
	if opts.ShowVersion {
		fmt.Printf("Secret Cult %s (%s) %s\n", version, commit, date)
		return
	}

	logger, closer, err := opts.NewLogger()
	if err != nil {
		config.Exitf("%v", err)
	}
	defer closer.Close()
	if !opts.Classic {
		logger.Info("window build unavailable without cgo, using the terminal interface")
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Seed:      opts.Seed,
		Logger:    logger,
	})
	if err := app.Run(); err != nil {
		logger.Error("front end stopped", "err", err)
		closer.Close()
		config.Exitf("%v", err)
	}
}
