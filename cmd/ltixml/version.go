package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func (rt *runtime) versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintf(rt.stdout, "ltixml version %s\n", cmd.Root().Version)
			return err
		},
	}
}
