package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/model"
	"github.com/goliatone/go-ltixml/pkg/render"
)

// errInvalidConfiguration is returned when the generated configuration fails
// validation; the tracker text has already been printed.
var errInvalidConfiguration = errors.New("configuration is invalid")

func (rt *runtime) generateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate the XML descriptor from flags",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tool-name", Aliases: []string{"n"}, Usage: "Tool name"},
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Tool description"},
			&cli.StringFlag{Name: "domain", Usage: "Tool domain"},
			&cli.StringFlag{Name: "launch-url", Aliases: []string{"u"}, Usage: "Launch URL"},
			&cli.StringFlag{Name: "privacy-level", Value: string(model.PrivacyPublic), Usage: "Privacy level (public, name_only, anonymous)"},
			&cli.BoolFlag{Name: "oauth-compliant", Usage: "Do not copy launch URL query parameters to the POST body"},
			&cli.StringFlag{Name: "visibility", Value: string(model.VisibilityPublic), Usage: "Visibility (public, members, admins)"},
			&cli.StringSliceFlag{Name: "custom", Usage: "Custom field as key=value, repeatable"},
			&cli.StringFlag{Name: "custom-fields", Usage: "Custom fields as key=value lines"},
			&cli.StringFlag{Name: "selection-height", Value: model.DefaultSelectionSize, Usage: "Selection height"},
			&cli.StringFlag{Name: "selection-width", Value: model.DefaultSelectionSize, Usage: "Selection width"},
			&cli.StringSliceFlag{Name: "placement", Aliases: []string{"p"}, Usage: "Placement key, repeatable"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.FormatXML, Usage: "Output format (xml, json)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (stdout if empty)"},
		},
		Action: rt.generateAction,
	}
}

func (rt *runtime) generateAction(ctx context.Context, cmd *cli.Command) error {
	cfg := model.Configuration{
		Title:           cmd.String("tool-name"),
		Description:     cmd.String("description"),
		Domain:          cmd.String("domain"),
		LaunchURL:       cmd.String("launch-url"),
		PrivacyLevel:    model.PrivacyLevel(cmd.String("privacy-level")),
		OAuthCompliant:  cmd.Bool("oauth-compliant"),
		Visibility:      model.Visibility(cmd.String("visibility")),
		CustomFields:    customFieldsText(cmd.String("custom-fields"), cmd.StringSlice("custom")),
		SelectionHeight: cmd.String("selection-height"),
		SelectionWidth:  cmd.String("selection-width"),
		Placements:      cmd.StringSlice("placement"),
	}

	var renderer render.Renderer
	switch format := strings.ToLower(cmd.String("format")); format {
	case render.FormatXML:
		renderer = render.XML()
	case render.FormatJSON:
		renderer = render.JSON()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	resp := form.New(form.WithLogger(rt.logger)).Evaluate(cfg)
	if resp.Failed() {
		fmt.Fprintln(rt.stderr, resp.Errors.Text)
		return errInvalidConfiguration
	}

	payload, err := renderer.Render(ctx, resp, render.RenderOptions{})
	if err != nil {
		return fmt.Errorf("render %s: %w", renderer.Name(), err)
	}
	return rt.writeOutput(cmd.String("output"), payload)
}

func (rt *runtime) writeOutput(path string, payload []byte) error {
	if path == "" {
		_, err := rt.stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintln(rt.stderr, successLine("Configuration written to "+path))
	return nil
}

func customFieldsText(raw string, pairs []string) string {
	lines := make([]string, 0, len(pairs)+1)
	if strings.TrimSpace(raw) != "" {
		lines = append(lines, raw)
	}
	lines = append(lines, pairs...)
	return strings.Join(lines, "\n")
}
