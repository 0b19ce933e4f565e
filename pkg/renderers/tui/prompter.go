package tui

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
	"github.com/goliatone/go-ltixml/pkg/model"
)

// Prompter walks the form definition in the terminal, submits the answers
// through the form handler and re-asks the fields that failed validation.
type Prompter struct {
	driver      PromptDriver
	form        *formspec.Form
	handler     *form.Handler
	maxAttempts int
	theme       Theme
}

// New constructs a Prompter. Without WithPromptDriver it prompts on the
// process stdio through survey.
func New(options ...Option) (*Prompter, error) {
	p := &Prompter{maxAttempts: defaultMaxAttempts}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil, nil, nil)
	}
	if p.form == nil {
		p.form = formspec.Default()
	}
	if p.handler == nil {
		p.handler = form.New()
	}
	return p, nil
}

// Run prompts for every field, then re-prompts only the failing fields until
// the submission validates or the attempt budget is spent. The last Response
// is always returned; the error is ErrTooManyAttempts when it still failed,
// ErrAborted when the user interrupted, or a driver error.
func (p *Prompter) Run(ctx context.Context) (form.Response, error) {
	initial := p.handler.Load()
	values := cloneValues(initial.Values)
	placements := initial.Placements

	fields := p.form.Fields()
	var resp form.Response
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		for _, field := range fields {
			if attempt > 1 && resp.Errors.Message(field.Name) == "" {
				continue
			}
			if err := p.ask(ctx, field, values, placements); err != nil {
				return resp, err
			}
		}

		resp = p.handler.Submit(values)
		if !resp.Failed() {
			return resp, nil
		}
		placements = resp.Placements
		if err := p.driver.Info(ctx, p.theme.ErrorPrefix+resp.Errors.Text); err != nil {
			return resp, err
		}
	}
	return resp, fmt.Errorf("%w (%d)", ErrTooManyAttempts, p.maxAttempts)
}

func (p *Prompter) ask(ctx context.Context, field formspec.Field, values url.Values, placements []model.PlacementOption) error {
	message := field.Label
	help := plainText(field.Help)

	switch field.Widget {
	case formspec.WidgetCheckbox:
		_, checked := values[field.Name]
		answer, err := p.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: checked, Help: help})
		if err != nil {
			return err
		}
		if answer {
			values.Set(field.Name, "on")
		} else {
			values.Del(field.Name)
		}

	case formspec.WidgetSelect:
		defaultIdx := indexOf(field.Options, values.Get(field.Name))
		if defaultIdx < 0 {
			defaultIdx = 0
		}
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Options,
			DefaultIndex: defaultIdx,
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			values.Set(field.Name, field.Options[idx])
		}

	case formspec.WidgetTextarea:
		answer, err := p.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: values.Get(field.Name), Help: help})
		if err != nil {
			return err
		}
		values.Set(field.Name, answer)

	case formspec.WidgetPlacements:
		labels := make([]string, 0, len(placements))
		var defaults []int
		for idx, placement := range placements {
			labels = append(labels, placement.Label)
			if placement.Active {
				defaults = append(defaults, idx)
			}
		}
		chosen, err := p.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  labels,
			Defaults: defaults,
			Help:     help,
			PageSize: len(labels),
		})
		if err != nil {
			return err
		}
		values.Del(field.Name)
		for _, idx := range chosen {
			if idx >= 0 && idx < len(placements) {
				values.Add(field.Name, placements[idx].Key)
			}
		}

	default:
		answer, err := p.driver.Input(ctx, InputConfig{Message: message, Default: values.Get(field.Name), Help: help})
		if err != nil {
			return err
		}
		values.Set(field.Name, strings.TrimSpace(answer))
	}
	return nil
}

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for key, vals := range in {
		out[key] = append([]string(nil), vals...)
	}
	return out
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// plainText strips markup from help prose for terminal display.
func plainText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(trimmed)))
}
