// Package keys holds the key bindings shared by screens and components.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/navstyle/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter/Space", "Select"),
	)
	Next = key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→/n", "Next"),
	)
	Prev = key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←/p", "Previous"),
	)
	NextPage = key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("Tab", "Next page"),
	)
	PrevPage = key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("Shift+Tab", "Prev page"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Retake = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Retake"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts bindings to footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
