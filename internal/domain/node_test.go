package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	return &Node{
		ID: "nsm-1", Name: "Mahesh Babu", Role: RoleNSM,
		Children: []*Node{
			{ID: "zsm-1", Name: "Jay Mahiyavanshi", Role: RoleZSM, Children: []*Node{
				{ID: "rsm-1", Name: "Ravi", Role: RoleRSM},
			}},
			{ID: "zsm-2", Name: "Anil", Role: RoleZSM},
		},
	}
}

func TestNode_Find(t *testing.T) {
	root := sampleTree()

	require.NotNil(t, root.Find("rsm-1"))
	assert.Equal(t, "Ravi", root.Find("rsm-1").Name)
	assert.Same(t, root, root.Find("nsm-1"))
	assert.Nil(t, root.Find("missing"))
}

func TestFindIn_SearchesEveryRoot(t *testing.T) {
	roots := []*Node{{ID: "a"}, sampleTree()}
	assert.Equal(t, "Anil", FindIn(roots, "zsm-2").Name)
	assert.Nil(t, FindIn(roots, "nope"))
}

func TestNode_WalkDepthAndPruning(t *testing.T) {
	root := sampleTree()

	depths := map[string]int{}
	root.Walk(func(n *Node, depth int) bool {
		depths[n.ID] = depth
		return n.ID != "zsm-1"
	})

	assert.Equal(t, 0, depths["nsm-1"])
	assert.Equal(t, 1, depths["zsm-1"])
	assert.Equal(t, 1, depths["zsm-2"])
	_, visited := depths["rsm-1"]
	assert.False(t, visited, "children of a pruned node must not be visited")
}

func TestNode_CloneIsDeep(t *testing.T) {
	root := sampleTree()
	root.MonthlyTargets = make([]MonthlyTarget, MonthsPerYear)

	cp := root.Clone()
	cp.Children[0].Name = "changed"
	cp.MonthlyTargets[0].LastYearReference = 42

	assert.Equal(t, "Jay Mahiyavanshi", root.Children[0].Name)
	assert.Zero(t, root.MonthlyTargets[0].LastYearReference)
}

func TestNode_ToggleLock(t *testing.T) {
	n := &Node{ID: "x"}
	assert.True(t, n.ToggleLock())
	assert.True(t, n.Locked)
	assert.False(t, n.ToggleLock())
	assert.False(t, n.Locked)
}

func TestNode_Coverage(t *testing.T) {
	root := sampleTree()

	cov, ok := root.Coverage()
	require.True(t, ok)
	assert.Equal(t, CoverageZones, cov.Kind)
	assert.Equal(t, 2, cov.Count)

	_, ok = (&Node{Role: RoleSO}).Coverage()
	assert.False(t, ok)
}

func TestIndexOf(t *testing.T) {
	nodes := sampleTree().Children
	assert.Equal(t, 1, IndexOf(nodes, "zsm-2"))
	assert.Equal(t, -1, IndexOf(nodes, "nsm-1"))
}
