package views

import (
	"jsonedit/internal/editor"
	"jsonedit/internal/tui/common"
	"jsonedit/internal/tui/components"
	"jsonedit/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	title = "Create new Json"

	// Rows taken by the bordered title and footer blocks.
	titleHeight  = 3
	footerHeight = 3

	defaultWidth  = 80
	defaultHeight = 24
)

// MainView draws the whole screen from a read-only model.
type MainView struct {
	Styles styles.Styles
	List   *components.PairList
	Footer *components.StatusBar
}

// BodySize returns the area left for the pair list in a width x height
// terminal.
func BodySize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	body := height - titleHeight - footerHeight
	if body < 1 {
		body = 1
	}
	return width, body
}

// Render draws the title, the pair list (or a popup over it) and the footer.
func (v *MainView) Render(m common.ModelReader) string {
	width, bodyHeight := BodySize(m.Width(), m.Height())

	head := v.Styles.Block.Width(width - 2).Render(v.Styles.Gradient(title))

	var body string
	switch m.Screen() {
	case editor.Editing:
		field, _ := m.EditingField()
		popup := components.EditPopup(v.Styles, field, m.PendingKey(), m.PendingValue(), components.PopupWidth(width))
		body = components.Centered(popup, width, bodyHeight)
	case editor.Exiting:
		popup := components.ExitPopup(v.Styles, components.PopupWidth(width))
		body = components.Centered(popup, width, bodyHeight)
	default:
		body = lipgloss.NewStyle().Width(width).Height(bodyHeight).Render(v.List.View())
	}

	field, editing := m.EditingField()
	foot := v.Footer.View(m.Screen(), field, editing, width)

	return lipgloss.JoinVertical(lipgloss.Left, head, body, foot)
}
