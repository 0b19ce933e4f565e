package tui

import (
	"github.com/goliatone/go-ltixml/pkg/form"
	"github.com/goliatone/go-ltixml/pkg/formspec"
)

const defaultMaxAttempts = 3

// Theme captures optional message prefixes the prompter applies when printing
// through the driver.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the Prompter.
type Option func(*Prompter)

// WithPromptDriver overrides the prompt driver used by the prompter.
func WithPromptDriver(driver PromptDriver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithFormSpec replaces the embedded form definition.
func WithFormSpec(spec *formspec.Form) Option {
	return func(p *Prompter) {
		if spec != nil {
			p.form = spec
		}
	}
}

// WithHandler evaluates submissions with handler instead of a default one.
func WithHandler(handler *form.Handler) Option {
	return func(p *Prompter) {
		if handler != nil {
			p.handler = handler
		}
	}
}

// WithMaxAttempts bounds how many validation rounds Run performs.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}
