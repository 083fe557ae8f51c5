// Package main seeds a local dashboard user and prints its session cookie.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/louisbranch/clearance/internal/cmd/seed"
	"github.com/louisbranch/clearance/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
