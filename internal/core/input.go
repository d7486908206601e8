package core

// Key identifies one of the six physical buttons of the handheld.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyOk
	KeyBack
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyOk:
		return "Ok"
	case KeyBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the key is one of the four arrows.
func (k Key) IsDirectional() bool {
	return k <= KeyRight
}

// InputType tells how a key was actuated.
type InputType uint8

const (
	InputPress     InputType = iota // Key went down
	InputLongPress                  // Key has been held past the long-press threshold
	InputRelease                    // Key went up
)

// String returns a human-readable name for the input type.
func (t InputType) String() string {
	switch t {
	case InputPress:
		return "Press"
	case InputLongPress:
		return "LongPress"
	case InputRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete button action produced by the input layer.
// Values are immutable once queued.
type KeyEvent struct {
	Key  Key
	Type InputType
}

// Press, Long and Release are shorthands used by input producers and tests.
func Press(k Key) KeyEvent   { return KeyEvent{Key: k, Type: InputPress} }
func Long(k Key) KeyEvent    { return KeyEvent{Key: k, Type: InputLongPress} }
func Release(k Key) KeyEvent { return KeyEvent{Key: k, Type: InputRelease} }

// String formats the event as "Key/Type".
func (e KeyEvent) String() string {
	return e.Key.String() + "/" + e.Type.String()
}
