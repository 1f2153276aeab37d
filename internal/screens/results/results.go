package results

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/navstyle/internal/router"
	"github.com/abhisek/navstyle/internal/screen"
	"github.com/abhisek/navstyle/internal/scoring"
	"github.com/abhisek/navstyle/internal/ui/keys"
	"github.com/abhisek/navstyle/internal/ui/layout"
)

// Page is one tab of the results screen.
type Page int

const (
	PageOverview Page = iota
	PageCoach
	PageGrowth
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageCoach:
		return "COACH & Context"
	case PageGrowth:
		return "Growth Plan"
	default:
		return "Unknown"
	}
}

// ResultsScreen shows the profile built from a completed assessment.
type ResultsScreen struct {
	report scoring.Report
	page   Page
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for report.
func New(report scoring.Report) *ResultsScreen {
	return &ResultsScreen{report: report}
}

// Report returns the report on display.
func (r *ResultsScreen) Report() scoring.Report {
	return r.report
}

// Page returns the visible page.
func (r *ResultsScreen) Page() Page {
	return r.page
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Your Profile"
}

func (r *ResultsScreen) Status() string {
	return fmt.Sprintf("CQ %d", r.report.Overall)
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.NextPage, keys.PrevPage, keys.Retake, keys.Back)
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, keys.NextPage):
		r.page = (r.page + 1) % pageCount
	case key.Matches(kmsg, keys.PrevPage):
		r.page = (r.page + pageCount - 1) % pageCount
	case key.Matches(kmsg, keys.Retake):
		return r, func() tea.Msg { return router.HomeMsg{} }
	}
	return r, nil
}
