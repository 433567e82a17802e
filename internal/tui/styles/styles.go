package styles

import (
	"strings"

	"jsonedit/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles defines the UI styles derived from a config theme.
type Styles struct {
	Block      lipgloss.Style // Bordered frame used by title and footers
	TitleFrom  string
	TitleTo    string
	Title      lipgloss.Style
	Pair       lipgloss.Style
	Empty      lipgloss.Style
	Normal     lipgloss.Style
	Editing    lipgloss.Style
	Exiting    lipgloss.Style
	Divider    lipgloss.Style
	NotEditing lipgloss.Style
	EditingKey lipgloss.Style
	EditingVal lipgloss.Style
	Hint       lipgloss.Style
	Popup      lipgloss.Style
	Box        lipgloss.Style
	ActiveBox  lipgloss.Style
}

// New builds the styles for theme.
func New(theme config.Theme) Styles {
	border := lipgloss.Color(theme.Border)
	return Styles{
		Block: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		TitleFrom: theme.TitleFrom,
		TitleTo:   theme.TitleTo,
		Title:     lipgloss.NewStyle().Bold(true),
		Pair:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Pair)),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)),
		Editing:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Editing)),
		Exiting:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Exiting)),
		Divider:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		NotEditing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		EditingKey: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)),
		EditingVal: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Editing)).Bold(true),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hint)),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border),
		ActiveBox: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.Editing)),
	}
}

// Default returns the styles for the default theme.
func Default() Styles {
	return New(config.GetTheme("default"))
}

// Gradient renders text with each rune coloured along the
// TitleFrom->TitleTo blend.
func (s Styles) Gradient(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	start, err := colorful.Hex(s.TitleFrom)
	if err != nil {
		start = colorful.Color{}
	}
	end, err := colorful.Hex(s.TitleTo)
	if err != nil {
		end = colorful.Color{}
	}

	var b strings.Builder
	steps := len(runes)
	for i, r := range runes {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		col := start.BlendHcl(end, t).Clamped()
		b.WriteString(s.Title.Foreground(lipgloss.Color(col.Hex())).Render(string(r)))
	}
	return b.String()
}
