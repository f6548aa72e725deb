package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quota/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow   = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed      = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue     = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple   = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg       = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
)

// RoleStyle colors a role by its depth in the hierarchy.
func RoleStyle(r domain.Role) lipgloss.Style {
	switch r {
	case domain.RoleNSM:
		return StyleHeader
	case domain.RoleZSM:
		return StylePurple
	case domain.RoleRSM:
		return StyleBlue
	case domain.RoleASM:
		return lipgloss.NewStyle().Foreground(ColorAqua)
	case domain.RoleSO:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RoleBadge renders the short role code padded to a fixed width.
func RoleBadge(r domain.Role) string {
	return RoleStyle(r).Render(fmt.Sprintf("%-3s", string(r)))
}

// LockIcon marks locked nodes.
func LockIcon(locked bool) string {
	if locked {
		return StyleYellow.Render("🔒")
	}
	return " "
}

// ShareStyle colors a sibling percentage total: green at 100, yellow under,
// red over.
func ShareStyle(total float64) lipgloss.Style {
	switch {
	case total > 100.0001:
		return StyleRed
	case total < 99.9999:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
