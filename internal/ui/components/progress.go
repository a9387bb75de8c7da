package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/ui/theme"
)

const (
	barFilled = "█"
	barEmpty  = "░"

	minBarCells = 4
)

// ProgressBar renders a fraction as a labelled block bar. Block characters
// keep the bar readable when color is stripped from the output.
type ProgressBar struct {
	Label       string
	Fraction    float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar for fraction, clamped to [0, 1]. Width is the
// total rendered width including label and percentage.
func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Fraction:    min(max(fraction, 0), 1),
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Cells returns how many of n cells are filled.
func (p ProgressBar) Cells(n int) int {
	return int(float64(n)*p.Fraction + 0.5)
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Label.Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(p.Fraction*100+0.5))
	}

	n := max(p.Width-lipgloss.Width(b.String())-len(suffix), minBarCells)
	filled := p.Cells(n)
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(barFilled, filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(barEmpty, n-filled)))
	if suffix != "" {
		b.WriteString(theme.Label.Render(suffix))
	}
	return b.String()
}
