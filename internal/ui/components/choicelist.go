package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/navstyle/internal/ui/keys"
	"github.com/abhisek/navstyle/internal/ui/theme"
)

// Choice is one selectable row of a ChoiceList.
type Choice struct {
	Key  string // shortcut shown before the text, e.g. "A" or "3"
	Text string
}

// ChoiceList is a single-choice selector with a cursor and a chosen row.
// The cursor follows navigation keys; Chosen only changes on selection.
type ChoiceList struct {
	Choices []Choice
	Cursor  int
	Chosen  int // -1 when nothing is chosen
}

// NewChoiceList creates a list with the cursor on chosen, or on the first
// row when chosen is -1.
func NewChoiceList(choices []Choice, chosen int) ChoiceList {
	cursor := chosen
	if cursor < 0 || cursor >= len(choices) {
		cursor = 0
		chosen = -1
	}
	return ChoiceList{
		Choices: choices,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update moves the cursor and chooses rows. It reports whether the chosen
// row changed.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, false
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, false
	case key.Matches(kmsg, keys.Down):
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
		return c, false
	case key.Matches(kmsg, keys.Select):
		return c.choose(c.Cursor)
	}

	// Direct selection by shortcut.
	pressed := kmsg.String()
	for i, ch := range c.Choices {
		if strings.EqualFold(ch.Key, pressed) {
			return c.choose(i)
		}
	}
	return c, false
}

func (c ChoiceList) choose(i int) (ChoiceList, bool) {
	if i < 0 || i >= len(c.Choices) {
		return c, false
	}
	changed := c.Chosen != i
	c.Cursor = i
	c.Chosen = i
	return c, changed
}

// View renders the list.
func (c ChoiceList) View() string {
	var s string
	for i, ch := range c.Choices {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, ch.Key, ch.Text)

		switch {
		case i == c.Chosen:
			s += theme.Chosen.Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
