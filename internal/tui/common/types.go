package common

import "jsonedit/internal/editor"

// ModelReader defines the interface that views use to read model state.
// Views get no way to change the state.
type ModelReader interface {
	Screen() editor.Screen
	EditingField() (editor.Field, bool)
	Pairs() editor.Pairs
	PendingKey() string
	PendingValue() string
	Width() int
	Height() int
}
