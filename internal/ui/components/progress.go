package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navstyle/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	LabelWidth  int // pads the label so stacked bars line up
	Percent     float64
	ShowPercent bool
	Width       int

	// Trailer replaces the percent text when set.
	Trailer string
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewScoreBar creates a bar for a 0-100 score, labelled with the score.
func NewScoreBar(label string, labelWidth, score, width int) ProgressBar {
	return ProgressBar{
		Label:      label,
		LabelWidth: labelWidth,
		Percent:    float64(score) / 100,
		Width:      width,
		Trailer:    fmt.Sprintf("%3d", score),
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	trailer := p.Trailer
	if trailer == "" && p.ShowPercent {
		trailer = fmt.Sprintf("%d%%", int(p.Percent*100+0.5))
	}

	labelWidth := lipgloss.Width(result)
	trailerWidth := 0
	if trailer != "" {
		trailerWidth = lipgloss.Width(trailer) + 2
	}

	barWidth := p.Width - labelWidth - trailerWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if trailer != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + trailer)
	}

	return result
}
