package components

import (
	"jsonedit/internal/editor"
	"jsonedit/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const cursor = "█"

// EditPopup renders the "new pair" dialog with Key and Value boxes side by
// side. The focused box is highlighted and shows a cursor.
func EditPopup(st styles.Styles, field editor.Field, key, value string, width int) string {
	inner := width - 4 // popup border and padding
	if inner < 10 {
		inner = 10
	}
	boxWidth := inner/2 - 2

	box := func(title, text string, active bool) string {
		style := st.Box
		if active {
			style = st.ActiveBox
			text += cursor
		}
		return style.Width(boxWidth).Render(title + "\n" + text)
	}

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		box("Key", key, field == editor.Key),
		box("Value", value, field == editor.Value),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, "Enter a new key-value pair", boxes)
	return st.Popup.Width(inner).Render(body)
}

// ExitPopup renders the quit confirmation.
func ExitPopup(st styles.Styles, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	text := st.Exiting.Render("Would you like to output the buffer as json? (y/n)")
	return st.Popup.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, "Y/N", text))
}

// Centered places popup in the middle of a width x height area.
func Centered(popup string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

// PopupWidth is the popup width for a terminal width columns wide.
func PopupWidth(width int) int {
	return width * 60 / 100
}
