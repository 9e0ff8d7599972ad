package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dscforge/dscforge/pkg/dsc"
)

// validate is the shared validator instance; struct tag validation is
// stateless and safe for concurrent use.
var validate = validator.New()

// Load reads and validates an extraction manifest from path.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates an extraction manifest from raw YAML.
func Parse(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if err := m.checkSemantics(); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkSemantics verifies the cross-field rules struct tags cannot
// express: unique instance names, known kind names, and promotions that
// point at declared resources.
func (m *Manifest) checkSemantics() error {
	seen := make(map[string]bool, len(m.Resources))
	for _, r := range m.Resources {
		if seen[r.Name] {
			return fmt.Errorf("duplicate resource instance name %q", r.Name)
		}
		seen[r.Name] = true

		for param, kind := range r.Types {
			if _, ok := dsc.ParseKind(kind); !ok {
				return fmt.Errorf("resource %q: unknown kind %q for parameter %q", r.Name, kind, param)
			}
		}
	}

	for _, p := range m.Promotions {
		if !seen[p.Resource] {
			return fmt.Errorf("promotion targets unknown resource %q", p.Resource)
		}
	}
	return nil
}
