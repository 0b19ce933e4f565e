package model

// Placement is a location in the host platform's UI where the tool can be
// launched. Placements come from a static catalog and are never mutated.
type Placement struct {
	Key           string `json:"key" yaml:"key"`
	Label         string `json:"label" yaml:"label"`
	DefaultActive bool   `json:"defaultActive,omitempty" yaml:"defaultActive,omitempty"`
}

// PlacementOption pairs a catalog entry with its checked state for one
// response.
type PlacementOption struct {
	Placement
	Active bool `json:"active"`
}
