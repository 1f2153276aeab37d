package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/navstyle/internal/scoring"
	"github.com/abhisek/navstyle/internal/ui/components"
	"github.com/abhisek/navstyle/internal/ui/theme"
)

const barLabelWidth = 14

func (r *ResultsScreen) View(width, height int) string {
	cw := min(width-8, 80)

	var body string
	switch r.page {
	case PageCoach:
		body = r.renderCoach(cw)
	case PageGrowth:
		body = r.renderGrowth(cw)
	default:
		body = r.renderOverview(cw)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, renderTabs(r.page), "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderTabs(active Page) string {
	var tabs []string
	for p := PageOverview; p < pageCount; p++ {
		if p == active {
			tabs = append(tabs, theme.Badge.Render(p.String()))
		} else {
			tabs = append(tabs, theme.BadgeMuted.Render(p.String()))
		}
	}
	return strings.Join(tabs, " ")
}

func (r *ResultsScreen) renderOverview(cw int) string {
	rep := r.report
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Render(lipgloss.NewStyle().Foreground(theme.Success).Render("Assessment Complete")))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.Subtitle.Render("Your Conflict Navigation Style Profile")))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Title.Render(rep.StyleLabel)))
	b.WriteString("\n\n")

	b.WriteString(components.NewScoreBar("Overall CQ", barLabelWidth, rep.Overall, cw).View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Collaboration Quotient %d/100", rep.Overall)))
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Development Focus: "))
	b.WriteString(theme.Body.Render(rep.RecommendationType))
	b.WriteString("\n\n")

	for _, in := range scoring.Breakdown(rep) {
		b.WriteString(components.NewScoreBar(in.Name, 32, in.Score, cw).View())
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + in.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *ResultsScreen) renderCoach(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("COACH Framework Profile"))
	b.WriteString("\n")
	for _, d := range scoring.CoachProfile(r.report) {
		b.WriteString(components.NewScoreBar(d.Label, barLabelWidth, d.Score, cw).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Contextual Agility"))
	b.WriteString("\n")
	for _, d := range scoring.ContextAgility(r.report) {
		b.WriteString(components.NewScoreBar(d.Label, barLabelWidth, d.Score, cw).View())
		b.WriteString("\n")
	}
	return b.String()
}

func (r *ResultsScreen) renderGrowth(cw int) string {
	plan := scoring.Plan(r.report)
	text := theme.Body.Width(cw)

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Top Strength"))
	b.WriteString("\n")
	b.WriteString(text.Render(plan.TopStrength))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("Growth Opportunity"))
	b.WriteString("\n")
	b.WriteString(text.Render(plan.GrowthOpportunity))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Best-fit Team Roles"))
	b.WriteString("\n")
	b.WriteString(text.Render("  " + strings.Join(plan.TeamRoles, " · ")))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Development Activities"))
	b.WriteString("\n")
	for _, a := range plan.DevelopmentActions {
		b.WriteString(theme.Body.Render("  • " + a))
		b.WriteString("\n")
	}
	return b.String()
}
