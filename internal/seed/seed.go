// Package seed provides the hierarchy a planning session starts from.
package seed

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/alexanderramin/quota/internal/importer"
)

//go:embed default.json
var defaultHierarchy []byte

// Default returns a fresh copy of the built-in hierarchy.
func Default() (*importer.Hierarchy, error) {
	schema, err := importer.ParseHierarchySchema(defaultHierarchy)
	if err != nil {
		return nil, fmt.Errorf("loading built-in hierarchy: %w", err)
	}
	return build(schema)
}

// Load reads a hierarchy from a seed file, or the built-in one when path is
// empty.
func Load(path string) (*importer.Hierarchy, error) {
	if path == "" {
		return Default()
	}
	schema, err := importer.LoadHierarchySchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading hierarchy %s: %w", path, err)
	}
	return build(schema)
}

func build(schema *importer.HierarchySchema) (*importer.Hierarchy, error) {
	if errs := importer.ValidateHierarchySchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid hierarchy: %w", errors.Join(errs...))
	}
	return importer.Convert(schema), nil
}
