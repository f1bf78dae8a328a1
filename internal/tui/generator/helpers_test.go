package generator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func maxLineWidth(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lipgloss.Width(line); w > max {
			max = w
		}
	}
	return max
}
