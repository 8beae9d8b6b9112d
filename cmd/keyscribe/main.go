// Package main is the entry point for the keyscribe CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "keyscribe",
		Usage:   "shortcut-triggered text transformation engine",
		Version: version,
		Commands: []*cli.Command{
			playCommand(),
			checkCommand(),
			applyCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "keyscribe: %v\n", err)
		os.Exit(1)
	}
}
