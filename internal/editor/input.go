package editor

import "fmt"

// InputKind is the closed set of key presses the editor distinguishes.
type InputKind int

const (
	// Other is any key the editor does not react to.
	Other InputKind = iota
	Rune
	Backspace
	Tab
	Enter
	Esc
)

// Input is one key press. R is only meaningful for Rune inputs.
type Input struct {
	Kind InputKind
	R    rune
}

// Char builds a Rune input.
func Char(r rune) Input {
	return Input{Kind: Rune, R: r}
}

// Text expands s into one Rune input per character.
func Text(s string) []Input {
	in := make([]Input, 0, len(s))
	for _, r := range s {
		in = append(in, Char(r))
	}
	return in
}

func (in Input) String() string {
	switch in.Kind {
	case Rune:
		return fmt.Sprintf("%q", in.R)
	case Backspace:
		return "backspace"
	case Tab:
		return "tab"
	case Enter:
		return "enter"
	case Esc:
		return "esc"
	default:
		return "other"
	}
}

// Effect is what the caller must do after applying a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectQuit asks the event loop to stop and emit the pairs.
	EffectQuit
)
