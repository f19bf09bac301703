package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key and the typed rune, if any.
// Arrow keys alias the letter controls and carry no rune, so they never end
// up in a high-score entry.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, rune) {
	switch msg.Type {
	case tea.KeyEnter:
		return core.KeyReturn, 0
	case tea.KeyBackspace, tea.KeyDelete:
		return core.KeyBackspace, 0
	case tea.KeySpace:
		return core.KeySpace, ' '
	case tea.KeyUp:
		return core.KeyW, 0
	case tea.KeyLeft:
		return core.KeyA, 0
	case tea.KeyRight:
		return core.KeyD, 0
	case tea.KeyDown:
		return core.KeyS, 0
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return core.KeyNone, 0
		}
		r := msg.Runes[0]
		return core.KeyFromRune(r), r
	}
	return core.KeyNone, 0
}

// IsQuit reports whether the message asks to leave the game. While the game
// collects initials only Ctrl+C quits, so Q can be typed.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg, textMode bool) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "q", "Q":
		return !textMode
	}
	return false
}

// IsBack reports whether the message asks to return to the menu.
func (km *KeyMapper) IsBack(msg tea.KeyMsg, textMode bool) bool {
	return msg.Type == tea.KeyEsc && !textMode
}

// latch emulates key-up events for terminals, which only report presses.
// A held key stays down for a number of ticks after its last press or
// auto-repeat; when the count runs out the key is released.
type latch struct {
	ticks int
	left  map[core.Key]int
}

func newLatch(ticks int) *latch {
	if ticks <= 0 {
		ticks = core.DefaultConfig().HoldTicks
	}
	return &latch{ticks: ticks, left: make(map[core.Key]int)}
}

// Press refreshes the key and reports whether it was up before.
func (l *latch) Press(k core.Key) bool {
	_, down := l.left[k]
	l.left[k] = l.ticks
	return !down
}

// Tick counts every held key down by one and returns the keys released.
func (l *latch) Tick() []core.Key {
	var released []core.Key
	for _, k := range []core.Key{core.KeyW, core.KeyA, core.KeyD} {
		n, down := l.left[k]
		if !down {
			continue
		}
		if n <= 1 {
			delete(l.left, k)
			released = append(released, k)
			continue
		}
		l.left[k] = n - 1
	}
	return released
}

// Held reports whether the key is currently latched.
func (l *latch) Held(k core.Key) bool {
	_, down := l.left[k]
	return down
}

// ReleaseAll clears the latch and returns the keys that were held.
func (l *latch) ReleaseAll() []core.Key {
	var released []core.Key
	for _, k := range []core.Key{core.KeyW, core.KeyA, core.KeyD} {
		if _, down := l.left[k]; down {
			released = append(released, k)
		}
	}
	clear(l.left)
	return released
}
