package domain

import "fmt"

// Role is a manager's position in the sales hierarchy.
type Role string

const (
	RoleCompany Role = "Company"
	RoleNSM     Role = "NSM"
	RoleZSM     Role = "ZSM"
	RoleRSM     Role = "RSM"
	RoleASM     Role = "ASM"
	RoleSO      Role = "SO"
)

// roleOrder lists the node roles from the top of the tree down. Company is
// synthetic and never carried by a node.
var roleOrder = []Role{RoleNSM, RoleZSM, RoleRSM, RoleASM, RoleSO}

// ValidRoles is the canonical set of accepted node role strings.
var ValidRoles = map[string]bool{
	"NSM": true, "ZSM": true, "RSM": true, "ASM": true, "SO": true,
}

// ParseRole converts a role string into a Role.
func ParseRole(s string) (Role, error) {
	if !ValidRoles[s] {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return Role(s), nil
}

// Rank returns the depth of the role below the company (NSM = 1, SO = 5).
// The synthetic company role ranks 0; unknown roles rank -1.
func (r Role) Rank() int {
	if r == RoleCompany {
		return 0
	}
	for i, o := range roleOrder {
		if o == r {
			return i + 1
		}
	}
	return -1
}

// Child returns the role directly below r. SO and unknown roles have none.
func (r Role) Child() (Role, bool) {
	rank := r.Rank()
	if rank < 0 || rank >= len(roleOrder) {
		return "", false
	}
	return roleOrder[rank], true
}

// Title is the long display name of the role.
func (r Role) Title() string {
	switch r {
	case RoleCompany:
		return "Company"
	case RoleNSM:
		return "National Sales Manager"
	case RoleZSM:
		return "Zonal Sales Manager"
	case RoleRSM:
		return "Regional Sales Manager"
	case RoleASM:
		return "Area Sales Manager"
	case RoleSO:
		return "Sales Officer"
	default:
		return string(r)
	}
}

// Level identifies which sibling set the user is looking at. It is derived
// from the role of the last breadcrumb.
type Level string

const (
	LevelCompany Level = "company"
	LevelNSM     Level = "nsm"
	LevelZSM     Level = "zsm"
	LevelRSM     Level = "rsm"
	LevelASM     Level = "asm"
)

// LevelFor maps a breadcrumb role to the level it opens. SO nodes have no
// children, so there is no SO level.
func LevelFor(r Role) Level {
	switch r {
	case RoleNSM:
		return LevelNSM
	case RoleZSM:
		return LevelZSM
	case RoleRSM:
		return LevelRSM
	case RoleASM:
		return LevelASM
	default:
		return LevelCompany
	}
}
