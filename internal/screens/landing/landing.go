package landing

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navstyle/internal/questionbank"
	"github.com/abhisek/navstyle/internal/router"
	"github.com/abhisek/navstyle/internal/screen"
	"github.com/abhisek/navstyle/internal/ui/components"
	"github.com/abhisek/navstyle/internal/ui/keys"
	"github.com/abhisek/navstyle/internal/ui/layout"
	"github.com/abhisek/navstyle/internal/ui/theme"
)

const (
	suiteName = "CCI Assessment Suite"
	title     = "Conflict Navigation Style"
	subtitle  = "A Deep-Dive Module of the Collaboration & Communication Intelligence Suite"

	intro = "Conflict is inevitable in any group, but how we respond to it makes " +
		"all the difference. This assessment explores how you perceive tension, " +
		"manage emotional triggers, respond under pressure and seek resolution."
)

// Outline lists the parts of the full assessment report.
var Outline = []string{
	"Communication Intelligence (Conflict Focus)",
	"Collaboration Intelligence Assessment",
	"Contextual Social Intelligence Layer",
	"COACH Framework Profile",
	"Personalized Growth Plan",
}

// introMinHeight is the content height below which the intro is dropped.
const introMinHeight = 24

// LandingScreen introduces the assessment and starts it.
type LandingScreen struct {
	menu      components.Menu
	questions int
	sections  int
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen. start builds a fresh assessment screen
// each time the user begins.
func New(bank *questionbank.Bank, start func() screen.Screen) *LandingScreen {
	items := []components.MenuItem{
		{Label: "Begin Assessment", Action: func() tea.Cmd {
			next := start()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &LandingScreen{
		menu:      components.NewMenu(items),
		questions: bank.Len(),
		sections:  len(bank.Sections()),
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return "Overview"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Select, keys.Quit)
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	cw := min(width-8, 76)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections,
		center.Render(theme.Badge.Render(suiteName)),
		center.Render(theme.Title.Render(title)),
		center.Render(theme.Subtitle.Render(subtitle)),
	)

	if height >= introMinHeight {
		sections = append(sections, "", theme.Body.Width(cw).Render(intro))
	}

	var outline strings.Builder
	outline.WriteString(theme.Heading.Render("Assessment Includes:"))
	outline.WriteString("\n")
	for _, part := range Outline {
		outline.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ "))
		outline.WriteString(theme.Body.Render(part))
		outline.WriteString("\n")
	}
	outline.WriteString(theme.Hint.Render(fmt.Sprintf("  %d questions across %d sections",
		l.questions, l.sections)))

	sections = append(sections, "", outline.String(), "", l.menu.View())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
