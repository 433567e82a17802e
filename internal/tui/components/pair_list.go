package components

import (
	"fmt"
	"strings"

	"jsonedit/internal/editor"
	"jsonedit/internal/tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const maskedValue = "****"

// PairList shows the committed pairs as "key : value" rows in a scrollable
// viewport.
type PairList struct {
	viewport viewport.Model
	styles   styles.Styles
	keyWidth int
	masked   func(key string) bool
	count    int
}

// NewPairList creates a list padding keys to keyWidth columns. masked may be
// nil.
func NewPairList(st styles.Styles, keyWidth int, masked func(string) bool) *PairList {
	if masked == nil {
		masked = func(string) bool { return false }
	}
	return &PairList{
		viewport: viewport.New(0, 0),
		styles:   st,
		keyWidth: keyWidth,
		masked:   masked,
	}
}

// SetSize sets the visible area.
func (l *PairList) SetSize(width, height int) {
	l.viewport.Width = width
	l.viewport.Height = height
}

// SetPairs replaces the rows. When the list grew it scrolls to the newest
// pair.
func (l *PairList) SetPairs(pairs editor.Pairs) {
	l.viewport.SetContent(l.render(pairs))
	if pairs.Len() > l.count {
		l.viewport.GotoBottom()
	}
	l.count = pairs.Len()
}

// Row formats one pair the way it appears in the list.
func (l *PairList) Row(p editor.Pair) string {
	value := p.Value
	if l.masked(p.Key) {
		value = maskedValue
	}
	return fmt.Sprintf("%-*s : %s", l.keyWidth, p.Key, value)
}

func (l *PairList) render(pairs editor.Pairs) string {
	if pairs.Len() == 0 {
		return l.styles.Empty.Render("No pairs yet. Press e to add one.")
	}
	rows := make([]string, 0, pairs.Len())
	for _, p := range pairs.Entries() {
		rows = append(rows, l.styles.Pair.Render(l.Row(p)))
	}
	return strings.Join(rows, "\n")
}

// Update scrolls the viewport.
func (l *PairList) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return cmd
}

// ScrollPercent reports how far the list is scrolled.
func (l *PairList) ScrollPercent() float64 {
	return l.viewport.ScrollPercent()
}

func (l *PairList) View() string {
	return l.viewport.View()
}
