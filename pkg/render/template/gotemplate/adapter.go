package gotemplate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-ltixml/pkg/render/template"
)

const (
	setName          = "ltixml"
	defaultExtension = ".tmpl"
)

// Option configures an Engine before construction.
type Option func(*Engine)

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// WithExtension overrides the extension appended to template names.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		e.ext = trimmed
	}
}

// Engine renders pongo2 templates from an fs.FS. Parsed templates are cached
// per path and are safe to execute concurrently.
type Engine struct {
	files fs.FS
	ext   string
	set   *pongo2.TemplateSet

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. WithFS is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		ext:   defaultExtension,
		cache: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.files == nil {
		return nil, errors.New("gotemplate: template fs is required")
	}

	e.set = pongo2.NewSet(setName, pongo2.NewFSLoader(e.files))
	registerFilters()
	return e, nil
}

// RenderTemplate executes the named template, appending the configured
// extension when name lacks it. Structs are passed through their JSON form.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}
	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}

	view, err := viewContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	rendered, err := tmpl.Execute(view)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute template %q: %w", path, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func viewContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("view data must encode as an object: %w", err)
	}
	return out, nil
}

var filtersOnce sync.Once

func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("lines") {
			_ = pongo2.RegisterFilter("lines", filterLines)
		}
		if !pongo2.FilterExists("contains") {
			_ = pongo2.RegisterFilter("contains", filterContains)
		}
	})
}

// filterLines splits text on newlines, dropping blank lines. Multi-line error
// text is rendered one paragraph per message.
func filterLines(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue([]string{}), nil
	}
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(in.String(), "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return pongo2.AsValue(out), nil
}

// filterContains reports whether a list holds param as a string. It backs
// checked and selected states for repeated form values.
func filterContains(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if param == nil {
		return pongo2.AsValue(false), nil
	}
	want := param.String()
	found := false
	in.Iterate(func(_, _ int, key, _ *pongo2.Value) bool {
		if key.String() == want {
			found = true
			return false
		}
		return true
	}, func() {})
	return pongo2.AsValue(found), nil
}
