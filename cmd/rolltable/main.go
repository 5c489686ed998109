// Package main provides a CLI for building roll tables from YAML sources.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rolltablecmd "github.com/louisbranch/rolltable/internal/cmd/rolltable"
	"github.com/louisbranch/rolltable/internal/platform/config"
)

func main() {
	cfg, err := rolltablecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rolltablecmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("%v", err)
	}
}
