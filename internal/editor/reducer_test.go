package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tab       = Input{Kind: Tab}
	enter     = Input{Kind: Enter}
	esc       = Input{Kind: Esc}
	backspace = Input{Kind: Backspace}
	other     = Input{Kind: Other}
)

// typePair enters edit mode, types key and value and commits.
func typePair(key, value string) []Input {
	in := []Input{Char('e')}
	in = append(in, Text(key)...)
	in = append(in, tab)
	in = append(in, Text(value)...)
	return append(in, enter)
}

func run(t *testing.T, s State, inputs ...Input) State {
	t.Helper()
	s, eff := ReduceAll(s, inputs...)
	require.Equal(t, EffectNone, eff)
	return s
}

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, Main, s.Screen())
	_, editing := s.EditingField()
	assert.False(t, editing)
	assert.Empty(t, s.PendingKey())
	assert.Empty(t, s.PendingValue())
	assert.Equal(t, 0, s.Pairs().Len())
	assert.False(t, s.Done())
}

func TestMainTransitions(t *testing.T) {
	tests := []struct {
		name   string
		input  Input
		screen Screen
	}{
		{"q opens quit prompt", Char('q'), Exiting},
		{"e starts a pair", Char('e'), Editing},
		{"other rune ignored", Char('x'), Main},
		{"enter ignored", enter, Main},
		{"esc ignored", esc, Main},
		{"tab ignored", tab, Main},
		{"backspace ignored", backspace, Main},
		{"unknown key ignored", other, Main},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Reduce(New(), tt.input)
			assert.Equal(t, EffectNone, eff)
			assert.Equal(t, tt.screen, s.Screen())
		})
	}
}

func TestEnterEditingStartsOnKey(t *testing.T) {
	s := run(t, New(), Char('e'))
	field, ok := s.EditingField()
	require.True(t, ok)
	assert.Equal(t, Key, field)
	assert.Empty(t, s.PendingKey())
	assert.Empty(t, s.PendingValue())
}

func TestEditThenEscape(t *testing.T) {
	s := run(t, New(), typePair("host", "db1")...)
	before := s.Pairs().Entries()

	s = run(t, s, Char('e'), esc)
	assert.Equal(t, Main, s.Screen())
	assert.Equal(t, before, s.Pairs().Entries())
	assert.Empty(t, s.PendingKey())
	assert.Empty(t, s.PendingValue())
	_, editing := s.EditingField()
	assert.False(t, editing)
}

func TestEscapeDiscardsBothBuffers(t *testing.T) {
	for _, field := range []string{"key", "value"} {
		t.Run(field, func(t *testing.T) {
			in := append([]Input{Char('e')}, Text("abc")...)
			in = append(in, tab)
			in = append(in, Text("def")...)
			if field == "key" {
				in = append(in, tab)
			}
			s := run(t, New(), in...)
			assert.Equal(t, "abc", s.PendingKey())
			assert.Equal(t, "def", s.PendingValue())

			s = run(t, s, esc)
			assert.Equal(t, Main, s.Screen())
			assert.Equal(t, 0, s.Pairs().Len())

			// Re-entering starts from empty buffers
			s = run(t, s, Char('e'))
			assert.Empty(t, s.PendingKey())
			assert.Empty(t, s.PendingValue())
		})
	}
}

func TestCommitPair(t *testing.T) {
	s := run(t, New(), typePair("host", "db1")...)

	assert.Equal(t, Main, s.Screen())
	assert.Equal(t, []Pair{{Key: "host", Value: "db1"}}, s.Pairs().Entries())
	assert.Empty(t, s.PendingKey())
	assert.Empty(t, s.PendingValue())
}

func TestEnterOnKeyAdvancesToValue(t *testing.T) {
	in := append([]Input{Char('e')}, Text("host")...)
	s := run(t, New(), append(in, enter)...)

	field, ok := s.EditingField()
	require.True(t, ok)
	assert.Equal(t, Value, field)
	assert.Equal(t, Editing, s.Screen())
	assert.Equal(t, "host", s.PendingKey())
	assert.Equal(t, 0, s.Pairs().Len())

	s = run(t, s, append(Text("db1"), enter)...)
	v, ok := s.Pairs().Get("host")
	require.True(t, ok)
	assert.Equal(t, "db1", v)
}

func TestOverwriteKeepsSize(t *testing.T) {
	s := run(t, New(), typePair("host", "db1")...)
	s = run(t, s, typePair("host", "db2")...)

	assert.Equal(t, 1, s.Pairs().Len())
	v, _ := s.Pairs().Get("host")
	assert.Equal(t, "db2", v)
}

func TestOverwriteKeepsPosition(t *testing.T) {
	s := run(t, New(), typePair("a", "1")...)
	s = run(t, s, typePair("b", "2")...)
	s = run(t, s, typePair("a", "3")...)

	assert.Equal(t, []string{"a", "b"}, s.Pairs().Keys())
	assert.Equal(t, []Pair{{"a", "3"}, {"b", "2"}}, s.Pairs().Entries())
}

func TestEmptyKeyCommitIsNoop(t *testing.T) {
	s := run(t, New(), typePair("", "orphan")...)

	assert.Equal(t, Main, s.Screen())
	assert.Equal(t, 0, s.Pairs().Len())
	assert.Empty(t, s.PendingValue())
}

func TestTabSwapsFocusWithoutLosingBuffers(t *testing.T) {
	in := append([]Input{Char('e')}, Text("k")...)
	in = append(in, tab)
	in = append(in, Text("v")...)
	in = append(in, tab)
	in = append(in, Text("2")...)
	s := run(t, New(), in...)

	field, _ := s.EditingField()
	assert.Equal(t, Key, field)
	assert.Equal(t, "k2", s.PendingKey())
	assert.Equal(t, "v", s.PendingValue())
}

func TestBackspace(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		s := run(t, New(), Char('e'), backspace, backspace)
		assert.Equal(t, Editing, s.Screen())
		assert.Empty(t, s.PendingKey())

		s = run(t, s, tab, backspace)
		assert.Empty(t, s.PendingValue())
	})

	t.Run("removes last rune", func(t *testing.T) {
		in := append([]Input{Char('e')}, Text("héé")...)
		s := run(t, New(), append(in, backspace)...)
		assert.Equal(t, "hé", s.PendingKey())
	})

	t.Run("value buffer", func(t *testing.T) {
		in := append([]Input{Char('e'), tab}, Text("db1")...)
		s := run(t, New(), append(in, backspace)...)
		assert.Equal(t, "db", s.PendingValue())
		assert.Empty(t, s.PendingKey())
	})
}

func TestEditingTreatsCommandLettersAsText(t *testing.T) {
	s := run(t, New(), append([]Input{Char('e')}, Text("qeyn")...)...)
	assert.Equal(t, Editing, s.Screen())
	assert.Equal(t, "qeyn", s.PendingKey())
}

func TestEditingIgnoresUnprintable(t *testing.T) {
	s := run(t, New(), Char('e'), Char('a'), Char('\x07'), other, Char('b'))
	assert.Equal(t, "ab", s.PendingKey())
}

func TestQuitFlow(t *testing.T) {
	s := run(t, New(), typePair("host", "db1")...)

	s = run(t, s, Char('q'))
	assert.Equal(t, Exiting, s.Screen())

	s = run(t, s, Char('n'))
	assert.Equal(t, Main, s.Screen())
	assert.Equal(t, 1, s.Pairs().Len())

	s = run(t, s, Char('q'))
	s, eff := Reduce(s, Char('y'))
	assert.Equal(t, EffectQuit, eff)
	assert.True(t, s.Done())
	assert.Equal(t, Main, s.Screen())

	// No further input is accepted
	after, eff := ReduceAll(s, typePair("x", "y")...)
	assert.Equal(t, EffectNone, eff)
	assert.Equal(t, s, after)
}

func TestExitingCancelsOnAnyOtherKey(t *testing.T) {
	for _, in := range []Input{Char('n'), Char('e'), Char('q'), esc, enter, other} {
		t.Run(in.String(), func(t *testing.T) {
			s := run(t, New(), Char('q'))
			s, eff := Reduce(s, in)
			assert.Equal(t, EffectNone, eff)
			assert.Equal(t, Main, s.Screen())
			assert.False(t, s.Done())
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := run(t, New(), typePair("a", "1")...)
	s = run(t, s, append([]Input{Char('e')}, Text("b")...)...)

	snapshotKey := s.PendingKey()
	snapshotPairs := s.Pairs().Entries()

	next := run(t, s, Char('c'), tab, Char('2'), enter)

	assert.Equal(t, snapshotKey, s.PendingKey())
	assert.Equal(t, snapshotPairs, s.Pairs().Entries())
	assert.Equal(t, 2, next.Pairs().Len())
}

func TestScreenIsAlwaysDefined(t *testing.T) {
	alphabet := []Input{Char('q'), Char('e'), Char('y'), Char('n'), Char('x'), tab, enter, esc, backspace, other}

	// Walk every sequence of length 4 over the alphabet.
	var walk func(s State, depth int)
	walk = func(s State, depth int) {
		switch s.Screen() {
		case Main, Exiting:
			_, editing := s.EditingField()
			require.False(t, editing)
		case Editing:
			_, editing := s.EditingField()
			require.True(t, editing)
		default:
			t.Fatalf("undefined screen %v", s.Screen())
		}
		if depth == 0 {
			return
		}
		for _, in := range alphabet {
			next, _ := Reduce(s, in)
			walk(next, depth-1)
		}
	}
	walk(New(), 4)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "main", Main.String())
	assert.Equal(t, "editing", Editing.String())
	assert.Equal(t, "exiting", Exiting.String())
	assert.Equal(t, "unknown", Screen(9).String())
	assert.Equal(t, "key", Key.String())
	assert.Equal(t, "value", Value.String())
	assert.Equal(t, "'a'", Char('a').String())
	assert.Equal(t, "tab", tab.String())
}
