package importer

import (
	"testing"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsTree(t *testing.T) {
	schema := validMinimalSchema()
	schema.Managers[0].Location = "North & West"
	schema.Managers[0].VsLastYearPercent = 12.5
	schema.Managers[0].Children = []ManagerImport{
		{ID: "zsm-1", Name: "Jay Mahiyavanshi", Role: "ZSM", TargetAmount: 1_800_000_000, Percentage: 55, Locked: true},
	}

	h := Convert(schema)

	assert.Equal(t, int64(10_000_000_000), h.TotalTarget)
	assert.Equal(t, 3.2, h.LastYearMultipliers[9])
	require.Len(t, h.Roots, 1)
	root := h.Roots[0]
	assert.Equal(t, "nsm-1", root.ID)
	assert.Equal(t, domain.RoleNSM, root.Role)
	assert.Equal(t, "North & West", root.Location)
	assert.Equal(t, 12.5, root.VsLastYearPercent)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "zsm-1", root.Children[0].ID)
	assert.True(t, root.Children[0].Locked)
	assert.Nil(t, root.MonthlyTargets)
}

func TestConvert_AssignsMissingIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Managers[0].ID = ""
	schema.Managers = append(schema.Managers, ManagerImport{Name: "Other", Role: "NSM"})

	h := Convert(schema)

	assert.NotEmpty(t, h.Roots[0].ID)
	assert.NotEmpty(t, h.Roots[1].ID)
	assert.NotEqual(t, h.Roots[0].ID, h.Roots[1].ID)
}

func TestParseHierarchySchema(t *testing.T) {
	data := []byte(`{
		"total_target": 500,
		"last_year_multipliers": [1,1,1,1,1,1,1,1,1,1,1,1],
		"managers": [{"name": "A", "role": "NSM", "target_amount": 500, "children": [
			{"name": "B", "role": "ZSM", "target_amount": 500}
		]}]
	}`)

	schema, err := ParseHierarchySchema(data)
	require.NoError(t, err)
	assert.Empty(t, ValidateHierarchySchema(schema))
	assert.Equal(t, "B", schema.Managers[0].Children[0].Name)
}

func TestParseHierarchySchema_Malformed(t *testing.T) {
	_, err := ParseHierarchySchema([]byte(`{"managers": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing hierarchy file")
}

func TestLoadHierarchySchema_MissingFile(t *testing.T) {
	_, err := LoadHierarchySchema(t.TempDir() + "/missing.json")
	assert.Error(t, err)
}
