package endpoints

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

/* Loader manages the entity → endpoint table from endpoints.yaml
 * Provides in-memory lookup for the web and CLI binaries
 */

// Config represents the structure of endpoints.yaml
type Config struct {
	Resources []ResourceConfig `yaml:"resources"`
}

// ResourceConfig represents a single entity in the YAML file
type ResourceConfig struct {
	Entity   string  `yaml:"entity"`
	Prefix   *string `yaml:"prefix"` // Default: same as entity. Empty string is allowed.
	Relation string  `yaml:"relation"`
	Label    string  `yaml:"label"`
}

// Loader holds the loaded endpoints
type Loader struct {
	endpoints map[string]*Endpoint
}

// NewLoader creates a new endpoint loader
func NewLoader() *Loader {
	return &Loader{
		endpoints: make(map[string]*Endpoint),
	}
}

// Load reads and parses the endpoints.yaml file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading endpoints file: %w", err)
	}
	return l.Parse(data)
}

// Parse loads endpoints from raw YAML
func (l *Loader) Parse(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing endpoints YAML: %w", err)
	}

	for _, rc := range config.Resources {
		prefix := rc.Entity
		if rc.Prefix != nil {
			prefix = *rc.Prefix
		}

		ep := &Endpoint{
			Entity:   rc.Entity,
			Prefix:   prefix,
			Relation: rc.Relation,
			Label:    rc.Label,
		}

		if err := ep.Validate(); err != nil {
			return fmt.Errorf("validating endpoint: %w", err)
		}
		if _, exists := l.endpoints[ep.Entity]; exists {
			return fmt.Errorf("duplicate entity: %s", ep.Entity)
		}

		l.endpoints[ep.Entity] = ep
	}

	return nil
}

// Get retrieves an endpoint by entity name
func (l *Loader) Get(entity string) (*Endpoint, error) {
	ep, exists := l.endpoints[entity]
	if !exists {
		return nil, fmt.Errorf("endpoint not found: %s", entity)
	}
	return ep, nil
}

// List returns all loaded endpoints ordered by entity name
func (l *Loader) List() []*Endpoint {
	eps := make([]*Endpoint, 0, len(l.endpoints))
	for _, ep := range l.endpoints {
		eps = append(eps, ep)
	}
	sort.Slice(eps, func(i, j int) bool { return eps[i].Entity < eps[j].Entity })
	return eps
}

// Exists checks if an entity is configured
func (l *Loader) Exists(entity string) bool {
	_, exists := l.endpoints[entity]
	return exists
}

// Default returns the endpoint table used by the rental API
func Default() *Loader {
	l := NewLoader()
	for _, ep := range []*Endpoint{
		{Entity: "cliente", Prefix: "cliente", Relation: "dependente", Label: "Cliente"},
		{Entity: "ator", Prefix: "ator", Label: "Ator"},
		{Entity: "classe", Prefix: "classe", Relation: "ator", Label: "Classe"},
		{Entity: "locacao", Prefix: "locacao", Label: "Locação"},
	} {
		l.endpoints[ep.Entity] = ep
	}
	return l
}
