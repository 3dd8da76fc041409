package schema

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed base.yaml
var baseYAML []byte

// Base returns the embedded base device model. It panics only if the
// embedded document is malformed, which is a build defect.
func Base() *Schema {
	s, err := Parse(baseYAML)
	if err != nil {
		panic(fmt.Sprintf("schema: embedded base model: %v", err))
	}
	return s
}

// LoadFiles returns the base model with the given schema documents merged on
// top, in order.
func LoadFiles(paths ...string) (*Schema, error) {
	s := Base()
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read schema: %w", err)
		}
		if err := s.Merge(data); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return s, nil
}
