package components

import (
	"github.com/abhisek/navstyle/internal/ui/theme"
)

// Button is a styled, non-interactive button label. Screens decide which
// key presses it; the button only reflects state.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
