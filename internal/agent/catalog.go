package agent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"specialist-router/internal/model"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Descriptor is the static configuration of one specialist.
type Descriptor struct {
	Type        model.AgentType   `yaml:"type"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Family      model.AgentFamily `yaml:"family"`
	Runtime     string            `yaml:"runtime"`
	Prompt      string            `yaml:"prompt"`
	Keywords    []string          `yaml:"keywords"`
}

type catalogFile struct {
	Agents []Descriptor `yaml:"agents"`
}

// Registry is the immutable, ordered set of known specialists.
type Registry struct {
	order  []model.AgentType
	byType map[model.AgentType]Descriptor
	def    model.AgentType
}

// Load reads the catalog from path, or the embedded catalog when path is empty.
func Load(path string, defaultAgent model.AgentType) (*Registry, error) {
	data := embeddedCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading agent catalog %s: %w", path, err)
		}
		data = raw
	}
	return Parse(data, defaultAgent)
}

// Parse decodes a YAML catalog. Runtime values are expanded against the environment.
func Parse(data []byte, defaultAgent model.AgentType) (*Registry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding agent catalog: %w", err)
	}
	for i := range file.Agents {
		file.Agents[i].Runtime = strings.TrimSpace(os.ExpandEnv(file.Agents[i].Runtime))
	}
	return NewRegistry(file.Agents, defaultAgent)
}

// NewRegistry validates descriptors and freezes them in the given order.
func NewRegistry(descs []Descriptor, defaultAgent model.AgentType) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyCatalog
	}
	if defaultAgent == "" {
		defaultAgent = model.DefaultAgent
	}

	r := &Registry{
		order:  make([]model.AgentType, 0, len(descs)),
		byType: make(map[model.AgentType]Descriptor, len(descs)),
		def:    defaultAgent,
	}

	for _, d := range descs {
		if d.Type == "" {
			return nil, ErrMissingAgentType
		}
		if _, dup := r.byType[d.Type]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAgent, d.Type)
		}
		switch d.Family {
		case "":
			d.Family = model.FamilySpecialist
		case model.FamilySpecialist, model.FamilyDirect:
		default:
			return nil, fmt.Errorf("%w: %s for %s", ErrInvalidFamily, d.Family, d.Type)
		}

		kw := make([]string, 0, len(d.Keywords))
		for _, k := range d.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				kw = append(kw, k)
			}
		}
		d.Keywords = kw

		r.order = append(r.order, d.Type)
		r.byType[d.Type] = d
	}

	if _, ok := r.byType[r.def]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefault, r.def)
	}

	return r, nil
}

// Get returns the descriptor for t.
func (r *Registry) Get(t model.AgentType) (Descriptor, bool) {
	d, ok := r.byType[t]
	return d, ok
}

// Known reports whether t names a specialist in the catalog.
func (r *Registry) Known(t model.AgentType) bool {
	_, ok := r.byType[t]
	return ok
}

// Default returns the default specialist.
func (r *Registry) Default() Descriptor {
	return r.byType[r.def]
}

// Types returns the agent types in enumeration order.
func (r *Registry) Types() []model.AgentType {
	out := make([]model.AgentType, len(r.order))
	copy(out, r.order)
	return out
}

// List returns the descriptors in enumeration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.byType[t])
	}
	return out
}
