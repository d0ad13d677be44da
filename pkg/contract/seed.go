package contract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DT021/invis/pkg/validator"
)

// Seed is a declarative set of project requirements, usually read from invis.yaml.
type Seed struct {
	Requirements []SeedRequirement `yaml:"requirements"`
}

// SeedRequirement declares a requirement composed from a base and catalogued rules.
// Each rule entry is a rule name or a single-key map of rule name to parameter.
type SeedRequirement struct {
	Name  string `yaml:"name"`
	Base  string `yaml:"base"`
	Rules []any  `yaml:"rules"`
}

// ParseSeed decodes a YAML seed document. Unknown keys are rejected.
func ParseSeed(data []byte) (*Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, errors.Join(ErrInvalidSeed, err)
	}
	return &seed, nil
}

// Apply builds every seeded requirement and registers them. Bases may name
// registered requirements or entries appearing earlier in the seed. Nothing is
// registered unless the whole seed is valid.
func (r *Registry) Apply(seed *Seed) error {
	if seed == nil {
		return nil
	}

	built := make(map[string]*Requirement, len(seed.Requirements))
	ordered := make([]*Requirement, 0, len(seed.Requirements))

	for i, entry := range seed.Requirements {
		if entry.Name == "" {
			return fmt.Errorf("%w: entry %d has no name", ErrInvalidSeed, i)
		}
		if _, taken := built[entry.Name]; taken {
			return fmt.Errorf("%w: %q declared twice", ErrInvalidSeed, entry.Name)
		}
		if _, taken := r.Lookup(entry.Name); taken {
			return fmt.Errorf("%w: %w: %q", ErrInvalidSeed, ErrDuplicateRequirement, entry.Name)
		}
		if entry.Base == "" {
			return fmt.Errorf("%w: %q has no base", ErrInvalidSeed, entry.Name)
		}

		base, ok := built[entry.Base]
		if !ok {
			base, ok = r.Lookup(entry.Base)
		}
		if !ok {
			return fmt.Errorf("%w: %q: %w: %q", ErrInvalidSeed, entry.Name, ErrUnknownRequirement, entry.Base)
		}

		rules := make([]validator.Rule, 0, len(entry.Rules))
		for _, raw := range entry.Rules {
			name, param, err := splitRule(raw)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrInvalidSeed, entry.Name, err)
			}
			rule, err := validator.Build(name, param)
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrInvalidSeed, entry.Name, err)
			}
			rules = append(rules, rule)
		}

		req := base.Extend(entry.Name, rules...)
		built[entry.Name] = req
		ordered = append(ordered, req)
	}

	for _, req := range ordered {
		if err := r.Register(req); err != nil {
			return errors.Join(ErrInvalidSeed, err)
		}
	}
	r.logger.Debug("Registry seeded.", "requirements", len(ordered))
	return nil
}

// LoadSeedFile parses the seed at path and applies it.
func (r *Registry) LoadSeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return fmt.Errorf("parse seed %s: %w", path, err)
	}
	if err := r.Apply(seed); err != nil {
		return fmt.Errorf("apply seed %s: %w", path, err)
	}
	return nil
}

func splitRule(raw any) (string, any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil, nil
	case map[string]any:
		if len(v) != 1 {
			return "", nil, fmt.Errorf("rule entry must have exactly one key, got %d", len(v))
		}
		for name, param := range v {
			return name, param, nil
		}
	}
	return "", nil, fmt.Errorf("rule entry must be a name or a single-key map, got %T", raw)
}
