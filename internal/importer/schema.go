package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// HierarchySchema is the top-level JSON structure of a seed file.
type HierarchySchema struct {
	TotalTarget         int64           `json:"total_target" validate:"gt=0"`
	LastYearMultipliers []float64       `json:"last_year_multipliers" validate:"len=12,dive,gt=0"`
	Managers            []ManagerImport `json:"managers" validate:"required,min=1,dive"`
}

// ManagerImport is one node of the seeded hierarchy. ID is optional; a
// random one is assigned when it is missing.
type ManagerImport struct {
	ID                string          `json:"id,omitempty"`
	Name              string          `json:"name" validate:"required"`
	Role              string          `json:"role" validate:"required,oneof=NSM ZSM RSM ASM SO"`
	Location          string          `json:"location"`
	TargetAmount      int64           `json:"target_amount" validate:"gte=0"`
	Percentage        float64         `json:"percentage" validate:"gte=0,lte=100"`
	VsLastYearPercent float64         `json:"vs_last_year_percent"`
	Locked            bool            `json:"locked,omitempty"`
	Children          []ManagerImport `json:"children,omitempty" validate:"dive"`
}

// ParseHierarchySchema decodes a seed document.
func ParseHierarchySchema(data []byte) (*HierarchySchema, error) {
	var schema HierarchySchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing hierarchy file: %w", err)
	}
	return &schema, nil
}

// LoadHierarchySchema reads and parses a seed JSON file.
func LoadHierarchySchema(path string) (*HierarchySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHierarchySchema(data)
}
