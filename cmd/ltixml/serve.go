package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-ltixml/internal/config"
	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/renderers/page"
	"github.com/goliatone/go-ltixml/pkg/server"
)

func (rt *runtime) serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the configuration form over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "HTTP listen address",
				Sources: cli.EnvVars(env + "ADDR"),
			},
			&cli.DurationFlag{
				Name:    "grace",
				Usage:   "Shutdown grace period",
				Sources: cli.EnvVars(env + "GRACE"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "Page theme",
				Sources: cli.EnvVars(env + "THEME"),
			},
			&cli.StringFlag{
				Name:    "variant",
				Usage:   "Page theme variant",
				Sources: cli.EnvVars(env + "THEME_VARIANT"),
			},
		},
		Action: rt.serveAction,
	}
}

func (rt *runtime) serveAction(ctx context.Context, cmd *cli.Command) error {
	srv, err := rt.newServer(cmd)
	if err != nil {
		return err
	}
	addr := rt.config.Server.Addr
	if cmd.IsSet("addr") {
		addr = cmd.String("addr")
	}
	return srv.Serve(ctx, addr)
}

// newServer applies serve flags over the loaded configuration.
func (rt *runtime) newServer(cmd *cli.Command) (*server.Server, error) {
	cfg := rt.config
	if cmd.IsSet("grace") {
		cfg.Server.Grace = config.Duration(cmd.Duration("grace"))
	}
	if cmd.IsSet("theme") {
		cfg.Theme.Name = cmd.String("theme")
	}
	if cmd.IsSet("variant") {
		cfg.Theme.Variant = cmd.String("variant")
	}

	registry, err := server.DefaultRegistry(page.WithTheme(cfg.Theme.Name, cfg.Theme.Variant))
	if err != nil {
		return nil, fmt.Errorf("failed to configure renderers: %w", err)
	}

	logger := rt.logger.With("component", "server")
	return server.New(
		server.WithRegistry(registry),
		server.WithHandler(form.New(form.WithLogger(logger))),
		server.WithLogger(logger),
		server.WithShutdownGrace(cfg.Server.Grace.Std()),
	)
}
