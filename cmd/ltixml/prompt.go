package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/renderers/tui"
)

func (rt *runtime) promptCmd() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Answer the form interactively and print the XML descriptor",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "attempts", Value: 3, Usage: "Validation rounds before giving up"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (stdout if empty)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return rt.promptAction(ctx, cmd, nil)
		},
	}
}

// promptAction runs the prompter with driver, or a survey driver on the
// process terminal when driver is nil.
func (rt *runtime) promptAction(ctx context.Context, cmd *cli.Command, driver tui.PromptDriver) error {
	if driver == nil {
		out, _ := rt.stdout.(terminal.FileWriter)
		driver = tui.NewSurveyDriver(nil, out, rt.stderr)
	}

	prompter, err := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithHandler(form.New(form.WithLogger(rt.logger))),
		tui.WithMaxAttempts(cmd.Int("attempts")),
		tui.WithTheme(tui.Theme{ErrorPrefix: errorStyle.Render("Invalid:") + "\n"}),
	)
	if err != nil {
		return err
	}

	resp, err := prompter.Run(ctx)
	if errors.Is(err, tui.ErrAborted) {
		return fmt.Errorf("prompt aborted")
	}
	if err != nil {
		return err
	}
	return rt.writeOutput(cmd.String("output"), []byte(resp.XML))
}
