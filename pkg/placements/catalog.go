package placements

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ltixml/pkg/model"
)

// DefaultPath is the location of the bundled catalog inside EmbeddedFS.
const DefaultPath = "placements.yaml"

// ErrEmptyCatalog is returned when a catalog document lists no placements.
var ErrEmptyCatalog = errors.New("placements: catalog is empty")

//go:embed data/placements.yaml
var embeddedCatalog embed.FS

// EmbeddedFS returns the bundled placement catalog. Callers may pass this
// filesystem to LoadFS to use the default configuration.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

type document struct {
	Placements []model.Placement `yaml:"placements"`
}

// Catalog is the read-only, ordered set of placements offered by the form.
type Catalog struct {
	entries []model.Placement
	index   map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog parsed from the embedded YAML. The result is
// shared and must not be mutated.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := LoadFS(EmbeddedFS(), DefaultPath)
		if err != nil {
			// The embedded file is part of the build; failing here is a
			// packaging bug.
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// LoadFS reads and parses the catalog at path within fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("placements: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("placements: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML catalog document. Keys must be unique and non-empty;
// entries without a label use the key.
func Parse(data []byte, source string) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("placements: parse %s: %w", source, err)
	}
	if len(doc.Placements) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyCatalog, source)
	}

	catalog := &Catalog{
		entries: make([]model.Placement, 0, len(doc.Placements)),
		index:   make(map[string]int, len(doc.Placements)),
	}
	for i, entry := range doc.Placements {
		entry.Key = strings.TrimSpace(entry.Key)
		entry.Label = strings.TrimSpace(entry.Label)
		if entry.Key == "" {
			return nil, fmt.Errorf("placements: %s entry %d has an empty key", source, i)
		}
		if _, exists := catalog.index[entry.Key]; exists {
			return nil, fmt.Errorf("placements: %s duplicate key %q", source, entry.Key)
		}
		if entry.Label == "" {
			entry.Label = entry.Key
		}
		catalog.index[entry.Key] = len(catalog.entries)
		catalog.entries = append(catalog.entries, entry)
	}
	return catalog, nil
}

// Placements returns a copy of the catalog entries in display order.
func (c *Catalog) Placements() []model.Placement {
	if c == nil {
		return nil
	}
	return append([]model.Placement(nil), c.entries...)
}

// Lookup returns the catalog entry for key.
func (c *Catalog) Lookup(key string) (model.Placement, bool) {
	if c == nil {
		return model.Placement{}, false
	}
	idx, ok := c.index[key]
	if !ok {
		return model.Placement{}, false
	}
	return c.entries[idx], true
}

// Keys lists the catalog keys in display order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Defaults marks the entries flagged defaultActive, the state of the form on
// first load.
func (c *Catalog) Defaults() []model.PlacementOption {
	if c == nil {
		return nil
	}
	out := make([]model.PlacementOption, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, model.PlacementOption{Placement: entry, Active: entry.DefaultActive})
	}
	return out
}

// Select marks exactly the entries whose keys appear in selected. Unknown keys
// are ignored here; they still reach the builder through the configuration.
func (c *Catalog) Select(selected []string) []model.PlacementOption {
	if c == nil {
		return nil
	}
	chosen := make(map[string]struct{}, len(selected))
	for _, key := range selected {
		chosen[key] = struct{}{}
	}
	out := make([]model.PlacementOption, 0, len(c.entries))
	for _, entry := range c.entries {
		_, active := chosen[entry.Key]
		out = append(out, model.PlacementOption{Placement: entry, Active: active})
	}
	return out
}
