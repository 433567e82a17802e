package components

import (
	"strings"
	"testing"

	"jsonedit/internal/editor"
	"jsonedit/internal/tui/keys"
	"jsonedit/internal/tui/styles"
	"jsonedit/pkg/testutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func pairs(kv ...string) editor.Pairs {
	var p editor.Pairs
	for i := 0; i+1 < len(kv); i += 2 {
		p, _ = p.Set(kv[i], kv[i+1])
	}
	return p
}

func TestPairListRow(t *testing.T) {
	l := NewPairList(styles.Default(), 25, nil)
	row := l.Row(editor.Pair{Key: "host", Value: "db1"})
	assert.Equal(t, "host"+strings.Repeat(" ", 21)+" : db1", row)

	narrow := NewPairList(styles.Default(), 0, nil)
	assert.Equal(t, "host : db1", narrow.Row(editor.Pair{Key: "host", Value: "db1"}))
}

func TestPairListMasking(t *testing.T) {
	l := NewPairList(styles.Default(), 0, func(k string) bool { return k == "password" })
	assert.Equal(t, "password : ****", l.Row(editor.Pair{Key: "password", Value: "hunter2"}))
	assert.Equal(t, "user : bob", l.Row(editor.Pair{Key: "user", Value: "bob"}))
}

func TestPairListView(t *testing.T) {
	l := NewPairList(styles.Default(), 0, nil)
	l.SetSize(40, 5)

	l.SetPairs(editor.Pairs{})
	assert.Contains(t, testutils.StripANSI(l.View()), "No pairs yet")

	l.SetPairs(pairs("a", "1", "b", "2"))
	view := testutils.StripANSI(l.View())
	assert.Contains(t, view, "a : 1")
	assert.Contains(t, view, "b : 2")
}

func TestPairListFollowsNewPairs(t *testing.T) {
	l := NewPairList(styles.Default(), 0, nil)
	l.SetSize(40, 2)

	var kv []string
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		kv = append(kv, k, "v")
	}
	l.SetPairs(pairs(kv...))
	view := testutils.StripANSI(l.View())
	assert.Contains(t, view, "e : v")
	assert.NotContains(t, view, "a : v")
	assert.Equal(t, 1.0, l.ScrollPercent())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Less(t, l.ScrollPercent(), 1.0)
}

func TestStatusBarModeText(t *testing.T) {
	sb := NewStatusBar(styles.Default(), keys.DefaultKeyMap())

	tests := []struct {
		screen  editor.Screen
		field   editor.Field
		editing bool
		want    string
	}{
		{editor.Main, editor.Key, false, "Normal Mode | Not Editing Anything"},
		{editor.Editing, editor.Key, true, "Editing Mode | Editing Json Key"},
		{editor.Editing, editor.Value, true, "Editing Mode | Editing Json Value"},
		{editor.Exiting, editor.Key, false, "Exiting | Not Editing Anything"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, testutils.StripANSI(sb.ModeText(tt.screen, tt.field, tt.editing)))
		})
	}
}

func TestStatusBarHints(t *testing.T) {
	sb := NewStatusBar(styles.Default(), keys.DefaultKeyMap())
	assert.Equal(t, "q quit / e make a new pair", testutils.StripANSI(sb.HintText(editor.Main)))
	assert.Contains(t, testutils.StripANSI(sb.HintText(editor.Editing)), "esc cancel")
	assert.Contains(t, testutils.StripANSI(sb.HintText(editor.Exiting)), "y output json and quit")

	view := testutils.StripANSI(sb.View(editor.Main, editor.Key, false, 100))
	assert.Contains(t, view, "Normal Mode")
	assert.Contains(t, view, "q quit")
}

func TestEditPopup(t *testing.T) {
	st := styles.Default()

	view := testutils.StripANSI(EditPopup(st, editor.Value, "host", "db", 60))
	assert.Contains(t, view, "Enter a new key-value pair")
	assert.Contains(t, view, "Key")
	assert.Contains(t, view, "host")
	assert.Contains(t, view, "db"+cursor)
	assert.NotContains(t, view, "host"+cursor)
}

func TestExitPopup(t *testing.T) {
	view := testutils.StripANSI(ExitPopup(styles.Default(), 60))
	assert.Contains(t, view, "Would you like to output the buffer as json? (y/n)")
}

func TestPopupWidth(t *testing.T) {
	assert.Equal(t, 48, PopupWidth(80))
	assert.Equal(t, 0, PopupWidth(0))
}
