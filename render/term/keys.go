package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/roamer/input"
)

// DefaultHoldWindow is how long a key press keeps its action held when no
// repeat follows. Terminals report presses only, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

var arrowNames = map[tcell.Key]string{
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyRight: "ArrowRight",
}

// KeyNames returns the key names a terminal key event stands for. An
// upper-case letter or a shifted arrow also reports "Shift", since the
// terminal never sends Shift on its own.
func KeyNames(ev *tcell.EventKey) []string {
	var names []string
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		names = append(names, string(r))
		if unicode.IsUpper(r) {
			names = append(names, "Shift")
			return names
		}
	default:
		name, ok := arrowNames[ev.Key()]
		if !ok {
			return nil
		}
		names = append(names, name)
	}

	if ev.Modifiers()&tcell.ModShift != 0 {
		names = append(names, "Shift")
	}
	return names
}

// Latch keeps actions held for a window after each press, standing in for
// the key-release events a terminal cannot deliver. Key repeat refreshes
// the window.
type Latch struct {
	Window time.Duration
	until  map[input.Action]time.Time
}

func NewLatch(window time.Duration) *Latch {
	return &Latch{Window: window, until: make(map[input.Action]time.Time)}
}

// Press latches the action bound to key. Returns false for unbound keys.
func (l *Latch) Press(key string, now time.Time) bool {
	action, ok := input.Lookup(key)
	if !ok {
		return false
	}
	l.until[action] = now.Add(l.Window)
	return true
}

// PressEvent latches every action a key event stands for.
func (l *Latch) PressEvent(ev *tcell.EventKey, now time.Time) bool {
	pressed := false
	for _, name := range KeyNames(ev) {
		if l.Press(name, now) {
			pressed = true
		}
	}
	return pressed
}

// Apply writes the latched actions into state as of now.
func (l *Latch) Apply(state *input.State, now time.Time) {
	for _, action := range input.Actions() {
		until, ok := l.until[action]
		state.Set(action, ok && now.Before(until))
	}
}

// Release drops every latched action.
func (l *Latch) Release() {
	clear(l.until)
}
