package assessment

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/navstyle/internal/assessment"
	"github.com/abhisek/navstyle/internal/questionbank"
	"github.com/abhisek/navstyle/internal/router"
	"github.com/abhisek/navstyle/internal/screen"
	"github.com/abhisek/navstyle/internal/screens/results"
	"github.com/abhisek/navstyle/internal/scoring"
	"github.com/abhisek/navstyle/internal/ui/components"
	"github.com/abhisek/navstyle/internal/ui/keys"
	"github.com/abhisek/navstyle/internal/ui/layout"
)

const noSelectionNotice = "Please select an answer before continuing."

// AssessmentScreen walks the user through the question bank one question
// at a time and hands the report to the results screen on completion.
type AssessmentScreen struct {
	session *assess.Session
	list    components.ChoiceList
	values  []assess.Value // parallel to list.Choices
	notice  string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)

// New starts a fresh session over bank.
func New(bank *questionbank.Bank, logger *slog.Logger) *AssessmentScreen {
	s := &AssessmentScreen{session: assess.New(bank, logger)}
	s.syncList()
	return s
}

// Session exposes the underlying state machine.
func (s *AssessmentScreen) Session() *assess.Session {
	return s.session
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) Status() string {
	return fmt.Sprintf("Q %d/%d", s.session.Index()+1, s.session.Total())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	next := keys.Next
	if s.session.IsLast() {
		next.SetHelp(next.Help().Key, "Complete")
	}
	prev := keys.Prev
	prev.SetEnabled(s.session.Index() > 0)
	return keys.Hints(keys.Up, keys.Down, keys.Select, next, prev, keys.Back)
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Next):
		return s.advance()
	case key.Matches(kmsg, keys.Prev):
		if err := s.session.Retreat(); err != nil {
			return s, nil
		}
		s.notice = ""
		s.syncList()
		return s, nil
	}

	var changed bool
	s.list, changed = s.list.Update(kmsg)
	if changed {
		if err := s.session.SelectOption(s.values[s.list.Chosen]); err == nil {
			s.notice = ""
		}
	}
	return s, nil
}

func (s *AssessmentScreen) advance() (screen.Screen, tea.Cmd) {
	err := s.session.Advance()
	switch {
	case errors.Is(err, assess.ErrNoSelection):
		s.notice = noSelectionNotice
		return s, nil
	case err != nil:
		return s, nil
	}

	s.notice = ""
	if s.session.Completed() {
		report := scoring.Aggregate(s.session.Responses())
		next := results.New(report)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	s.syncList()
	return s, nil
}

// syncList rebuilds the choice list for the current question and restores
// any pending selection.
func (s *AssessmentScreen) syncList() {
	q := s.session.Current()
	choices, values := choicesFor(q)
	s.values = values

	chosen := -1
	if pending, ok := s.session.Pending(); ok {
		for i, v := range values {
			if v == pending {
				chosen = i
				break
			}
		}
	}
	s.list = components.NewChoiceList(choices, chosen)
}

// choicesFor maps a question to list rows and the value each row records.
func choicesFor(q questionbank.Question) ([]components.Choice, []assess.Value) {
	if q.Kind.UsesOptions() {
		choices := make([]components.Choice, len(q.Options))
		values := make([]assess.Value, len(q.Options))
		for i, opt := range q.Options {
			choices[i] = components.Choice{Key: optionKey(i), Text: opt.Text}
			values[i] = assess.OptionValue(opt.ID)
		}
		return choices, values
	}

	points := q.Scale.Points()
	choices := make([]components.Choice, len(points))
	values := make([]assess.Value, len(points))
	for i, p := range points {
		var label string
		switch p {
		case q.Scale.Min:
			label = q.Scale.MinLabel
		case q.Scale.Max:
			label = q.Scale.MaxLabel
		}
		choices[i] = components.Choice{Key: strconv.Itoa(p), Text: label}
		values[i] = assess.ScaleValue(p)
	}
	return choices, values
}

// optionKey returns the letter shown for the i-th option: A, B, C...
func optionKey(i int) string {
	return string(rune('A' + i))
}
