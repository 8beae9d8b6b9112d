package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/keyscribe/keyscribe/internal/config"
	"github.com/keyscribe/keyscribe/internal/input/shortcut"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate a settings file",
		ArgsUsage: "<settings-file>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("usage: keyscribe check <settings-file>", 2)
			}

			s, err := config.Load(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
			}

			fmt.Printf("%s: ok (%d actions, selection modifier %s)\n",
				path, len(s.Actions), s.SelectionModifier)
			for _, a := range s.Actions {
				norm, _ := shortcut.NormalizeString(a.Shortcut)
				fmt.Printf("  %-24s %-20s %s\n", a.ID, norm, a.Kind)
			}
			return nil
		},
	}
}
