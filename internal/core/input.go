package core

// Key is a physical key the game reacts to, independent of the terminal
// library that produced it.
type Key int

const (
	KeyNone Key = iota
	KeyW        // thrust
	KeyA        // rotate left
	KeyS        // teleport
	KeyD        // rotate right
	KeyP        // pause
	KeySpace    // fire
	KeyReturn   // commit initials
	KeyBackspace
	KeyChar // any other printable character; the rune travels alongside
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyP:
		return "P"
	case KeySpace:
		return "Space"
	case KeyReturn:
		return "Return"
	case KeyBackspace:
		return "Backspace"
	case KeyChar:
		return "Char"
	default:
		return "Unknown"
	}
}

// KeyFromRune maps a typed character to a Key. Letters are matched case
// insensitively; everything else printable is KeyChar.
func KeyFromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case 'p', 'P':
		return KeyP
	case ' ':
		return KeySpace
	case '\r', '\n':
		return KeyReturn
	}
	if r >= 0x20 && r != 0x7f {
		return KeyChar
	}
	return KeyNone
}

// IsHoldable reports whether the key is polled as held down every tick.
func (k Key) IsHoldable() bool {
	return k == KeyW || k == KeyA || k == KeyD
}
