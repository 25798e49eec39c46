package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ytworth/internal/application"
	"ytworth/internal/config"
	"ytworth/internal/logger"
	"ytworth/internal/models"
	"ytworth/internal/service"
	"ytworth/internal/tui"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func serveCommand(cancel context.CancelFunc) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP API (default)",
		Action: serveAction(cancel),
	}
}

func serveAction(cancel context.CancelFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		app := application.NewApplication(c.String("config"))

		if err := app.Start(c.Context); err != nil {
			return fmt.Errorf("can't start application: %w", err)
		}
		if err := app.Wait(c.Context, cancel); err != nil {
			return fmt.Errorf("all systems closed with errors: %w", err)
		}

		return nil
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:      "estimate",
		Usage:     "estimate a single video",
		ArgsUsage: "URL",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the estimate as JSON"},
		},
		Action: func(c *cli.Context) error {
			svc, _, err := newCLIService(c)
			if err != nil {
				return err
			}

			resp, err := svc.Estimate(c.Context, models.EstimateRequest{URL: c.Args().First()})
			if err != nil {
				return cli.Exit(models.UserMessage(err), 1)
			}

			if c.Bool("json") {
				return printJSON(c.App.Writer, resp)
			}
			printEstimate(c.App.Writer, resp)
			return nil
		},
	}
}

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "interactive estimator in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-file", Usage: "write rotated JSON logs here instead of discarding them"},
			&cli.DurationFlag{Name: "timeout", Value: tui.DefaultLookupTimeout, Usage: "per-lookup timeout"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.ParseConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// logs must not reach the terminal while the UI owns it
			log := zap.NewNop().Sugar()
			if path := c.String("log-file"); path != "" {
				var closer io.Closer
				log, closer, err = logger.NewFile(path, cfg.Log.Level)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer closer.Close()
			}

			svc, err := application.NewService(cfg, log, nil)
			if err != nil {
				return err
			}

			return tui.Run(c.Context, svc, c.Duration("timeout"))
		},
	}
}

func tiersCommand() *cli.Command {
	return &cli.Command{
		Name:  "tiers",
		Usage: "list payout tiers",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIER\tFROM\tTO\tASSET")
			for _, b := range service.Bands() {
				to := "and up"
				if b.Max != nil {
					to = "$" + humanize.Commaf(*b.Max)
				}
				fmt.Fprintf(tw, "%s\t$%s\t%s\t%s %s\n", b.Tier, humanize.Commaf(b.Min), to, b.Emoji, b.Asset)
			}
			return tw.Flush()
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "re-estimate videos on a schedule and report tier changes",
		ArgsUsage: "URL [URL...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "every", Value: "@every 5m", Usage: "cron schedule"},
			&cli.IntFlag{Name: "concurrency", Value: 4, Usage: "parallel lookups per pass"},
		},
		Action: func(c *cli.Context) error {
			svc, log, err := newCLIService(c)
			if err != nil {
				return err
			}

			out := c.App.Writer
			w := service.NewWatcher(svc, log, service.WatchConfig{
				Schedule:       c.String("every"),
				MaxConcurrency: c.Int("concurrency"),
			}, func(u service.WatchUpdate) {
				printWatchUpdate(out, u)
			})

			return w.Run(c.Context, c.Args().Slice())
		},
	}
}

// newCLIService builds the estimate service without metrics.
func newCLIService(c *cli.Context) (*service.Service, *zap.SugaredLogger, error) {
	cfg, err := config.ParseConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	svc, err := application.NewService(cfg, log, nil)
	if err != nil {
		return nil, nil, err
	}

	return svc, log, nil
}

func printEstimate(w io.Writer, resp models.EstimateResponse) {
	fmt.Fprintf(w, "this video is worth: %s %s\n", resp.Display, resp.Emoji)
	fmt.Fprintf(w, "%s views, %s tier\n", humanize.Comma(resp.Views), resp.Tier)
	if resp.Celebrate {
		fmt.Fprintln(w, "🎉 jackpot! 🎉")
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printWatchUpdate(w io.Writer, u service.WatchUpdate) {
	ts := time.Now().Format(time.RFC3339)

	switch {
	case u.Err != nil:
		fmt.Fprintf(w, "%s  %s  %s\n", ts, u.URL, models.UserMessage(u.Err))
	case u.TierChanged():
		fmt.Fprintf(w, "%s  %s  %s %s  (%s -> %s)\n",
			ts, u.URL, u.Estimate.Display, u.Estimate.Emoji, u.Previous.Tier, u.Estimate.Tier)
	default:
		fmt.Fprintf(w, "%s  %s  %s %s  %s views\n",
			ts, u.URL, u.Estimate.Display, u.Estimate.Emoji, humanize.Comma(u.Estimate.Views))
	}
}
