package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/sixcities/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.config/sixcities/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (default ~/.config/sixcities/prefs.toml)")
	refresh := flag.Duration("refresh", 0, "refresh offers in the background at this interval, e.g. 1m (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		PrefsPath:    *prefsPath,
		RefreshEvery: *refresh,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sixcities: %v\n", err)
		return 1
	}
	return 0
}
