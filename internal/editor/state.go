// Package editor holds the key/value model behind the JSON form and the
// reducer that drives it. Nothing here touches the terminal: the UI forwards
// inputs to Reduce and reads the returned State to draw.
package editor

// Screen is the top-level interaction mode.
type Screen int

const (
	// Main is the idle screen listing committed pairs.
	Main Screen = iota
	// Editing is active while a pair is being composed.
	Editing
	// Exiting is the quit confirmation prompt.
	Exiting
)

func (s Screen) String() string {
	switch s {
	case Main:
		return "main"
	case Editing:
		return "editing"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Field names the scratch buffer that receives keystrokes while editing.
type Field int

const (
	Key Field = iota
	Value
)

func (f Field) String() string {
	if f == Value {
		return "value"
	}
	return "key"
}

// Draft is the pair being composed. It only exists while the screen is
// Editing.
type Draft struct {
	Field Field
	Key   string
	Value string
}

// State is the whole editor. It is a value: Reduce returns a new State and
// never modifies the one it was given.
type State struct {
	pairs  Pairs
	screen Screen
	draft  *Draft
	done   bool
}

// New returns an empty editor on the Main screen.
func New() State {
	return State{screen: Main}
}

// Pairs returns the committed pairs.
func (s State) Pairs() Pairs {
	return s.pairs
}

// Screen returns the current screen.
func (s State) Screen() Screen {
	return s.screen
}

// EditingField returns the focused field. ok is false outside Editing.
func (s State) EditingField() (field Field, ok bool) {
	if s.draft == nil {
		return Key, false
	}
	return s.draft.Field, true
}

// PendingKey returns the key being typed, or "" outside Editing.
func (s State) PendingKey() string {
	if s.draft == nil {
		return ""
	}
	return s.draft.Key
}

// PendingValue returns the value being typed, or "" outside Editing.
func (s State) PendingValue() string {
	if s.draft == nil {
		return ""
	}
	return s.draft.Value
}

// Done reports whether quit has been confirmed. A done state ignores input.
func (s State) Done() bool {
	return s.done
}

// withDraft returns s with a private copy of the draft changed by fn.
func (s State) withDraft(fn func(d *Draft)) State {
	d := *s.draft
	fn(&d)
	s.draft = &d
	return s
}
