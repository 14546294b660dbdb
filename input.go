package polysandbox

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyEventType distinguishes key presses from releases.
type KeyEventType uint8

const (
	KeyDown KeyEventType = iota // fires when a key is pressed (and on autorepeat)
	KeyUp                       // fires when a key is released
)

func (t KeyEventType) String() string {
	if t == KeyUp {
		return "keyup"
	}
	return "keydown"
}

// KeyCode is a window-system key code. The bound codes are the uppercase
// ASCII values of their letters.
type KeyCode int

const (
	KeySpace KeyCode = 32 // switch focus
	KeyA     KeyCode = 65 // move left
	KeyD     KeyCode = 68 // move right
	KeyE     KeyCode = 69 // rotate, negative delta
	KeyQ     KeyCode = 81 // rotate, positive delta
	KeyS     KeyCode = 83 // move down
	KeyW     KeyCode = 87 // move up
)

var keyNames = map[string]KeyCode{
	"space": KeySpace,
	"a":     KeyA,
	"d":     KeyD,
	"e":     KeyE,
	"q":     KeyQ,
	"s":     KeyS,
	"w":     KeyW,
}

// ParseKey resolves a key name ("w", "Space") or a decimal key code.
func ParseKey(s string) (KeyCode, error) {
	s = strings.TrimSpace(s)
	if k, ok := keyNames[strings.ToLower(s)]; ok {
		return k, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return KeyCode(n), nil
	}
	return 0, fmt.Errorf("unknown key %q", s)
}

// KeyEvent is a single key transition.
type KeyEvent struct {
	Type KeyEventType
	Code KeyCode
}

// Controls holds the per-tick magnitudes applied while a key is held.
type Controls struct {
	MoveSpeed   float64 // world units per tick
	RotateSpeed float64 // radians per tick
}

// DefaultControls moves 2 units and turns 0.03 rad per tick.
var DefaultControls = Controls{MoveSpeed: 2, RotateSpeed: 0.03}

// RepeatFilter drops key-downs for keys already held, so autorepeat cannot
// re-trigger edge actions such as the focus switch. The simulation itself
// does not filter; backends that emit repeats wrap their input with this.
type RepeatFilter struct {
	held map[KeyCode]bool
}

// NewRepeatFilter returns an empty filter.
func NewRepeatFilter() *RepeatFilter {
	return &RepeatFilter{held: make(map[KeyCode]bool)}
}

// Accept reports whether ev should be forwarded and records key state.
func (f *RepeatFilter) Accept(ev KeyEvent) bool {
	switch ev.Type {
	case KeyDown:
		if f.held[ev.Code] {
			return false
		}
		f.held[ev.Code] = true
		return true
	case KeyUp:
		if !f.held[ev.Code] {
			return false
		}
		delete(f.held, ev.Code)
		return true
	}
	return false
}

// Held reports whether the key is currently down.
func (f *RepeatFilter) Held(code KeyCode) bool {
	return f.held[code]
}
