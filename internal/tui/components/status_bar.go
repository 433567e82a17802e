package components

import (
	"jsonedit/internal/editor"
	"jsonedit/internal/tui/keys"
	"jsonedit/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the two-part footer: the current mode on the left and the
// keys that work on this screen on the right.
type StatusBar struct {
	styles styles.Styles
	keys   keys.KeyMap
	help   help.Model
}

func NewStatusBar(st styles.Styles, km keys.KeyMap) *StatusBar {
	h := help.New()
	h.ShortSeparator = " / "
	h.Styles.ShortKey = st.Hint.Bold(true)
	h.Styles.ShortDesc = st.Hint
	h.Styles.ShortSeparator = st.Hint

	return &StatusBar{
		styles: st,
		keys:   km,
		help:   h,
	}
}

// ModeText is the left half, e.g. "Editing Mode | Editing Json Value".
func (s *StatusBar) ModeText(screen editor.Screen, field editor.Field, editing bool) string {
	var mode string
	switch screen {
	case editor.Editing:
		mode = s.styles.Editing.Render("Editing Mode")
	case editor.Exiting:
		mode = s.styles.Exiting.Render("Exiting")
	default:
		mode = s.styles.Normal.Render("Normal Mode")
	}

	var what string
	switch {
	case !editing:
		what = s.styles.NotEditing.Render("Not Editing Anything")
	case field == editor.Value:
		what = s.styles.EditingVal.Render("Editing Json Value")
	default:
		what = s.styles.EditingKey.Render("Editing Json Key")
	}

	return mode + s.styles.Divider.Render(" | ") + what
}

// HintText is the right half listing the keys for screen.
func (s *StatusBar) HintText(screen editor.Screen) string {
	return s.help.ShortHelpView(s.keys.ForScreen(screen).ShortHelp())
}

// View renders both halves side by side across width columns.
func (s *StatusBar) View(screen editor.Screen, field editor.Field, editing bool, width int) string {
	// Each block adds a border column on both sides.
	half := width/2 - 2
	if half < 1 {
		half = 1
	}
	rest := width - half - 4
	if rest < 1 {
		rest = 1
	}
	left := s.styles.Block.Width(half).Render(s.ModeText(screen, field, editing))
	right := s.styles.Block.Width(rest).Render(s.HintText(screen))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
