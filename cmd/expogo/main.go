// Package main solves Expogo cases read from stdin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/expogo/internal/platform/cmd"
	"github.com/louisbranch/expogo/internal/platform/config"
	"github.com/louisbranch/expogo/internal/tools/batch"
)

func main() {
	cfg, err := batch.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceExpogo, func(ctx context.Context) error {
		return batch.Run(ctx, cfg, os.Stdin, os.Stdout)
	})
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}
