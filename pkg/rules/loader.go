package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TableNames lists the five tables every catalogue must carry.
var TableNames = []string{
	"required_fields",
	"conditional_required",
	"forbidden_phrases",
	"closure_rules",
	"logic_conflicts",
}

//go:embed rules.yaml
var defaultCatalogue []byte

// Load reads a rule catalogue from a YAML file. A missing file or a missing
// table is fatal here at the loader boundary: the engine performs no rule
// evaluation without a complete table set.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules file not found: %v", err)
	}
	return Parse(data)
}

// LoadDefault returns the catalogue embedded in the binary.
func LoadDefault() (*Catalogue, error) {
	return Parse(defaultCatalogue)
}

// Parse unmarshals and validates a YAML catalogue.
func Parse(data []byte) (*Catalogue, error) {
	// Decode the table names first so an absent table can be told apart
	// from a present-but-empty one.
	var tables map[string]yaml.Node
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rule catalogue: %v", err)
	}
	for _, name := range TableNames {
		if _, ok := tables[name]; !ok {
			return nil, fmt.Errorf("missing table '%s' in rule catalogue", name)
		}
	}

	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse rule catalogue: %v", err)
	}
	cat.normalize()
	return &cat, nil
}
