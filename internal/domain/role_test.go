package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_RankAndChild(t *testing.T) {
	tests := []struct {
		role  Role
		rank  int
		child Role
		ok    bool
	}{
		{RoleCompany, 0, RoleNSM, true},
		{RoleNSM, 1, RoleZSM, true},
		{RoleZSM, 2, RoleRSM, true},
		{RoleRSM, 3, RoleASM, true},
		{RoleASM, 4, RoleSO, true},
		{RoleSO, 5, "", false},
		{Role("CEO"), -1, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.role.Rank())
			child, ok := tt.role.Child()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.child, child)
		})
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelCompany, LevelFor(RoleCompany))
	assert.Equal(t, LevelNSM, LevelFor(RoleNSM))
	assert.Equal(t, LevelZSM, LevelFor(RoleZSM))
	assert.Equal(t, LevelRSM, LevelFor(RoleRSM))
	assert.Equal(t, LevelASM, LevelFor(RoleASM))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("ZSM")
	assert.NoError(t, err)
	assert.Equal(t, RoleZSM, r)

	_, err = ParseRole("zsm")
	assert.Error(t, err)
}
