package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"tea-engine/internal/model"
)

//go:embed technologies.yaml
var presetsYAML []byte

// UnknownTechnologyError reports a lookup for a technology id that is not in
// the catalog. It is the caller's fault and maps to a 400 at the API layer.
type UnknownTechnologyError struct {
	ID string
}

func (e *UnknownTechnologyError) Error() string {
	return fmt.Sprintf("unknown technology: %q", e.ID)
}

// Catalog is the process-wide technology preset table. Loaded once, read-only
// afterwards, so concurrent lookups need no locking.
type Catalog struct {
	profiles map[string]model.TechnologyProfile
}

type presetFile struct {
	Technologies []model.TechnologyProfile `yaml:"technologies"`
}

// Load parses the embedded preset table.
func Load() (*Catalog, error) {
	var f presetFile
	if err := yaml.Unmarshal(presetsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse technology presets: %w", err)
	}
	if len(f.Technologies) == 0 {
		return nil, fmt.Errorf("technology presets: empty table")
	}
	profiles := make(map[string]model.TechnologyProfile, len(f.Technologies))
	for _, p := range f.Technologies {
		if p.ID == "" {
			return nil, fmt.Errorf("technology preset with empty id")
		}
		if _, dup := profiles[p.ID]; dup {
			return nil, fmt.Errorf("duplicate technology preset: %q", p.ID)
		}
		profiles[p.ID] = p
	}
	return &Catalog{profiles: profiles}, nil
}

// MustLoad is Load for process startup, where a broken embedded table is
// unrecoverable.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the profile for id, or an *UnknownTechnologyError.
func (c *Catalog) Get(id string) (model.TechnologyProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return model.TechnologyProfile{}, &UnknownTechnologyError{ID: id}
	}
	return p, nil
}

// List returns all profiles sorted by id.
func (c *Catalog) List() []model.TechnologyProfile {
	out := make([]model.TechnologyProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
