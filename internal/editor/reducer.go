package editor

import (
	"unicode"
	"unicode/utf8"
)

// Reduce applies one input to s and returns the next state together with the
// effect the caller must carry out. Every input is legal in every state;
// unrecognised keys leave the state as it was.
func Reduce(s State, in Input) (State, Effect) {
	if s.done {
		return s, EffectNone
	}

	switch s.screen {
	case Main:
		return reduceMain(s, in), EffectNone
	case Exiting:
		return reduceExiting(s, in)
	case Editing:
		return reduceEditing(s, in), EffectNone
	}
	return s, EffectNone
}

// ReduceAll folds inputs through Reduce and stops at the first EffectQuit.
func ReduceAll(s State, inputs ...Input) (State, Effect) {
	for _, in := range inputs {
		var eff Effect
		s, eff = Reduce(s, in)
		if eff == EffectQuit {
			return s, eff
		}
	}
	return s, EffectNone
}

func reduceMain(s State, in Input) State {
	if in.Kind != Rune {
		return s
	}
	switch in.R {
	case 'q':
		s.screen = Exiting
	case 'e':
		s.screen = Editing
		s.draft = &Draft{Field: Key}
	}
	return s
}

func reduceExiting(s State, in Input) (State, Effect) {
	s.screen = Main
	if in.Kind == Rune && in.R == 'y' {
		s.done = true
		return s, EffectQuit
	}
	return s, EffectNone
}

func reduceEditing(s State, in Input) State {
	switch in.Kind {
	case Rune:
		if !unicode.IsPrint(in.R) {
			return s
		}
		return s.withDraft(func(d *Draft) {
			if d.Field == Key {
				d.Key += string(in.R)
			} else {
				d.Value += string(in.R)
			}
		})
	case Backspace:
		return s.withDraft(func(d *Draft) {
			if d.Field == Key {
				d.Key = dropLastRune(d.Key)
			} else {
				d.Value = dropLastRune(d.Value)
			}
		})
	case Tab:
		return s.withDraft(func(d *Draft) {
			d.Field = toggle(d.Field)
		})
	case Enter:
		if s.draft.Field == Key {
			return s.withDraft(func(d *Draft) {
				d.Field = Value
			})
		}
		return commit(s)
	case Esc:
		return leaveEditing(s)
	}
	return s
}

// commit moves the draft into the pairs. An empty key commits nothing but
// still closes the draft.
func commit(s State) State {
	if s.draft.Key != "" {
		s.pairs, _ = s.pairs.Set(s.draft.Key, s.draft.Value)
	}
	return leaveEditing(s)
}

func leaveEditing(s State) State {
	s.screen = Main
	s.draft = nil
	return s
}

func toggle(f Field) Field {
	if f == Key {
		return Value
	}
	return Key
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
