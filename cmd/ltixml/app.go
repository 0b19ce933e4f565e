package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-ltixml/internal/config"
	"github.com/goliatone/go-ltixml/internal/logging"
)

// env prefixes every environment variable the CLI reads.
const env = "LTIXML_"

// runtime carries what the root Before hook resolves for subcommands.
type runtime struct {
	stdout io.Writer
	stderr io.Writer
	config config.Config
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	rt := &runtime{stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:      "ltixml",
		Version:   Version,
		Usage:     "Build Canvas LTI tool configuration XML",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				Sources: cli.EnvVars(env + "CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Sources: cli.EnvVars(env + "LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Sources: cli.EnvVars(env + "LOG_FORMAT"),
			},
		},
		Before: rt.before,
		Commands: []*cli.Command{
			rt.serveCmd(),
			rt.generateCmd(),
			rt.promptCmd(),
			rt.placementsCmd(),
			rt.versionCmd(),
		},
	}
}

// before loads the configuration file, applies the global overrides and
// configures logging.
func (rt *runtime) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.LoadFile(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Log.Format = cmd.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	rt.config = cfg
	rt.logger = logging.New(cfg.Log.Format, cfg.Log.Level, rt.stderr)
	return ctx, nil
}
