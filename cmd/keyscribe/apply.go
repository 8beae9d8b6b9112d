package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v3"

	"github.com/keyscribe/keyscribe/internal/app"
	"github.com/keyscribe/keyscribe/internal/config"
	"github.com/keyscribe/keyscribe/internal/transform"
)

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "run one transformer over text from arguments or stdin",
		ArgsUsage: "<transformer> [text...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (.json, .yaml or .toml)",
			},
			&cli.StringSliceFlag{
				Name:    "arg",
				Aliases: []string{"a"},
				Usage:   "transformer argument as key=value (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "copy the result to the clipboard",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 60 * time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return cli.Exit("usage: keyscribe apply <transformer> [text...]", 2)
			}

			text := strings.Join(cmd.Args().Slice()[1:], " ")
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}

			s := config.Default()
			if path := cmd.String("config"); path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				s = loaded
			}

			logger := app.NewLogger(app.LoggerConfig{
				Level:  app.LogLevelError,
				Output: os.Stderr,
				Prefix: "keyscribe",
			})
			registry, err := app.BuildRegistry(s, nil, logger)
			if err != nil {
				return err
			}
			tr, err := registry.Lookup(name)
			if err != nil {
				return err
			}

			args, err := parseArgs(cmd.StringSlice("arg"))
			if err != nil {
				return err
			}

			runCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()
			out, err := tr.Transform(runCtx, transform.Request{Text: text, Args: args})
			if err != nil {
				return err
			}

			fmt.Println(out)
			if cmd.Bool("copy") {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}
}

func parseArgs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	args := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed --arg %q, want key=value", p)
		}
		args[k] = v
	}
	return args, nil
}
