// Package keys maps terminal key presses onto editor inputs and describes
// the bindings shown in the footer of each screen.
package keys

import (
	"jsonedit/internal/editor"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings for every screen.
type KeyMap struct {
	// Main
	Quit    key.Binding
	NewPair key.Binding

	// Exiting
	Confirm key.Binding
	Cancel  key.Binding

	// Editing
	Switch   key.Binding
	Complete key.Binding
	Abort    key.Binding
	Erase    key.Binding

	// Scrolling the pair list on the main screen
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the bindings the editor reacts to.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		NewPair:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "make a new pair")),
		Confirm:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "output json and quit")),
		Cancel:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep editing")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch boxes")),
		Complete: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete")),
		Abort:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Erase:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "erase")),
		Up:       key.NewBinding(key.WithKeys("up", "pgup"), key.WithHelp("↑", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "pgdown"), key.WithHelp("↓", "scroll down")),
	}
}

// screenHelp adapts a KeyMap to help.KeyMap for one screen.
type screenHelp struct {
	short []key.Binding
}

func (h screenHelp) ShortHelp() []key.Binding  { return h.short }
func (h screenHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.short} }

// ForScreen returns the bindings that mean something on screen s.
func (k KeyMap) ForScreen(s editor.Screen) help.KeyMap {
	switch s {
	case editor.Editing:
		return screenHelp{short: []key.Binding{k.Abort, k.Switch, k.Complete}}
	case editor.Exiting:
		return screenHelp{short: []key.Binding{k.Confirm, k.Cancel}}
	default:
		return screenHelp{short: []key.Binding{k.Quit, k.NewPair}}
	}
}

// Translate converts a key message into editor inputs. A paste or a burst of
// runes yields one input per rune; alt chords and anything unrecognised
// become Other. Ctrl+H erases, as some terminals send it for backspace.
func Translate(msg tea.KeyMsg) []editor.Input {
	if msg.Alt {
		return []editor.Input{{Kind: editor.Other}}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return []editor.Input{{Kind: editor.Other}}
		}
		return editor.Text(string(msg.Runes))
	case tea.KeySpace:
		return []editor.Input{editor.Char(' ')}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []editor.Input{{Kind: editor.Backspace}}
	case tea.KeyTab:
		return []editor.Input{{Kind: editor.Tab}}
	case tea.KeyEnter:
		return []editor.Input{{Kind: editor.Enter}}
	case tea.KeyEsc:
		return []editor.Input{{Kind: editor.Esc}}
	}
	return []editor.Input{{Kind: editor.Other}}
}
