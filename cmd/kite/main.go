package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"kite/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := &cli.Command{
		Name:  "kite",
		Usage: "Search the Orbit template catalog from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Catalog base URL (overrides config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.Run(ctx, app.Options{
				ConfigPath: cmd.String("config"),
				Endpoint:   cmd.String("endpoint"),
			})
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "kite: %v\n", err)
		return 1
	}
	return 0
}
