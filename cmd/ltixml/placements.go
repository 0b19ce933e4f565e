package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-ltixml/pkg/placements"
)

func (rt *runtime) placementsCmd() *cli.Command {
	return &cli.Command{
		Name:  "placements",
		Usage: "List the Canvas placements the form offers",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			catalog := placements.Default()
			width := 0
			for _, key := range catalog.Keys() {
				width = max(width, len(key))
			}

			var out strings.Builder
			for _, placement := range catalog.Placements() {
				line := keyStyle.Render(placement.Key+strings.Repeat(" ", width-len(placement.Key))) + "  " + placement.Label
				if placement.DefaultActive {
					line += " " + mutedStyle.Render("(default)")
				}
				out.WriteString(line)
				out.WriteByte('\n')
			}
			_, err := fmt.Fprint(rt.stdout, out.String())
			return err
		},
	}
}
