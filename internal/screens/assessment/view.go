package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navstyle/internal/ui/components"
	"github.com/abhisek/navstyle/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	q := s.session.Current()
	cw := min(width-8, 90)

	var b strings.Builder

	// Badges and position.
	badges := theme.Badge.Render(q.Section) + " " + theme.BadgeMuted.Render(q.Kind.DisplayName())
	position := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.session.Index()+1, s.session.Total()))
	gap := cw - lipgloss.Width(badges) - lipgloss.Width(position)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(badges + strings.Repeat(" ", gap) + position)
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", s.session.ProgressFraction(), false, cw)
	bar.Trailer = fmt.Sprintf("%d%% Complete", int(s.session.ProgressFraction()*100+0.5))
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n")
	if q.Context != "" {
		b.WriteString(theme.Hint.Width(cw).Render(q.Context))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.list.View())

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Alert.Render(s.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.renderNav(cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderNav renders the Previous and Next buttons at opposite edges.
func (s *AssessmentScreen) renderNav(cw int) string {
	prev := components.Button{Label: "Previous", Disabled: s.session.Index() == 0}

	nextLabel := "Next"
	if s.session.IsLast() {
		nextLabel = "Complete Assessment"
	}
	next := components.Button{
		Label:    nextLabel,
		Active:   s.session.CanAdvance(),
		Disabled: !s.session.CanAdvance(),
	}

	left := prev.View()
	right := next.View()
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}
