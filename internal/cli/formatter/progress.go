package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCoverage renders how much of a budget is allocated, like
// [████░░░░] 45%. The bar is yellow while under budget, green when exactly
// covered and red when over.
func RenderCoverage(allocated, budget int64, width int) string {
	if width < 2 {
		width = 2
	}
	var ratio float64
	if budget > 0 {
		ratio = float64(allocated) / float64(budget)
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := min(int(ratio*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case budget > 0 && allocated == budget:
		style = StyleGreen
	case allocated > budget:
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), ratio*100)
}
