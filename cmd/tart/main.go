// Package main provides the tart CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ashn-dot-dev/tart"
)

var version = "dev"

func main() {
	app := &cli.Command{
		Name:      "tart",
		Version:   version,
		Usage:     "Procedural markup language processor",
		ArgsUsage: "<file.tart>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "maximum lambda call depth (overrides config)",
			},
		},
		Action: runDocument,
	}

	err := app.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func runDocument(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one source file, received %d arguments", cmd.Args().Len())
	}
	path := cmd.Args().First()

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if cmd.Bool("verbose") {
		cfg.Verbose = true
	}
	if d := cmd.Int("max-depth"); d > 0 {
		cfg.MaxCallDepth = int(d)
	}

	set := tart.NewSet("tart", tart.MustNewLocalFileSystemLoader(""))
	if cfg.MaxCallDepth > 0 {
		set.Options.MaxCallDepth = cfg.MaxCallDepth
	}
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
		set.SetLogger(logger)
	}

	tpl, err := set.FromFile(path)
	if err != nil {
		return err
	}
	return tpl.ExecuteWriter(os.Stdout)
}
