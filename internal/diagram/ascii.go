package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ASCIIWidth is the number of CL stations drawn per polar.
const ASCIIWidth = 60

// DrawASCIIPolar plots CD against CL for a terminal. The horizontal axis
// runs over the polar's CL range with ASCIIWidth stations.
func DrawASCIIPolar(p Polar, height int) (string, error) {
	cl, cd, err := p.Resample(ASCIIWidth)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(cd,
		asciigraph.Height(height),
		asciigraph.Precision(4),
		asciigraph.Caption(fmt.Sprintf("%s: CD over CL from %.3f to %.3f", p.Name, cl[0], cl[len(cl)-1])),
	))
	sb.WriteString("\n")
	return sb.String(), nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
