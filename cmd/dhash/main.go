// Command dhash drives a dhash table from a script and compares benchmark
// history files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/theflywheel/dhash"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "dhash",
		Usage: "Exercise a double hashing table",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "base-size",
				Value:   dhash.DefaultMinBaseSize,
				Usage:   "Initial base size of the table",
				Sources: cli.EnvVars("DHASH_BASE_SIZE"),
			},
			&cli.StringFlag{
				Name:    "hasher",
				Value:   dhash.HashFamilyPolynomial.String(),
				Usage:   "Hash family: polynomial or xxhash",
				Sources: cli.EnvVars("DHASH_HASHER"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level: debug, info, warn or error",
				Sources: cli.EnvVars("DHASH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "dev",
				Usage:   "Log format: dev, json or text",
				Sources: cli.EnvVars("DHASH_LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			runCommand(),
			benchCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a script of insert/search/delete/stats/dump lines",
		ArgsUsage: "[script file, stdin if omitted]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd.Root().ErrWriter, cmd.String("log-format"), cmd.String("log-level"))
			if err != nil {
				return err
			}

			family, err := dhash.HashFamilyString(cmd.String("hasher"))
			if err != nil {
				return fmt.Errorf("invalid --hasher: %w", err)
			}

			var in io.Reader = cmd.Root().Reader
			if in == nil {
				in = os.Stdin
			}
			if path := cmd.Args().First(); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			ops, err := parseScript(in)
			if err != nil {
				return fmt.Errorf("invalid script: %w", err)
			}

			tbl := dhash.NewWithSize(cmd.Int("base-size"),
				dhash.WithHasher(family.Hasher()),
				dhash.WithLogger(log),
			)
			defer tbl.Destroy()

			log.Debug("running script", "ops", len(ops), "hasher", family, "size", tbl.Size())
			return execute(cmd.Root().Writer, tbl, ops, log)
		},
	}
}
