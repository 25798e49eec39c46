package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ytworth/internal/config"
	"ytworth/internal/version"

	"github.com/urfave/cli/v2"
)

// @title        ytworth API
// @version      1.0
// @description  Estimates what a YouTube video is worth from its view count at a fixed CPM.
// @BasePath     /
func main() {
	config.LoadDotEnv()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	app := &cli.App{
		Name:    "ytworth",
		Usage:   "estimate what a YouTube video is worth",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{config.EnvConfigPath},
			},
		},
		Action: serveAction(cancel),
		Commands: []*cli.Command{
			serveCommand(cancel),
			estimateCommand(),
			tuiCommand(),
			tiersCommand(),
			watchCommand(),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalln(err)
	}
}
