package domain

// CoverageKind names what a node's direct reports cover.
type CoverageKind string

const (
	CoverageZones       CoverageKind = "zones"
	CoverageRegions     CoverageKind = "regions"
	CoverageAreas       CoverageKind = "areas"
	CoverageTerritories CoverageKind = "territories"
)

// Coverage is the role-specific span of a node: an NSM covers zones, a ZSM
// regions, an RSM areas and an ASM territories. Sales officers cover nothing.
type Coverage struct {
	Kind  CoverageKind
	Count int
}

// Coverage returns the node's span, discriminated by its role. ok is false
// for SO nodes.
func (n *Node) Coverage() (Coverage, bool) {
	var kind CoverageKind
	switch n.Role {
	case RoleNSM:
		kind = CoverageZones
	case RoleZSM:
		kind = CoverageRegions
	case RoleRSM:
		kind = CoverageAreas
	case RoleASM:
		kind = CoverageTerritories
	default:
		return Coverage{}, false
	}
	return Coverage{Kind: kind, Count: len(n.Children)}, true
}
