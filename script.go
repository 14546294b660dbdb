package polysandbox

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a key script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	code KeyCode
}

// scriptFile is the top-level JSON structure of a key script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Snapshotter captures labeled frames. RasterSurface implements it.
type Snapshotter interface {
	Snapshot(label string)
}

// Script replays key input one step per tick for automated runs. Drive it
// from a Loop tick hook:
//
//	loop := NewLoop(sim, surface, WithTickHook(func(int) error {
//		return script.Step(&surface.EventHub, surface)
//	}))
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON key script such as
//
//	{"steps": [
//		{"action": "keydown", "key": "d"},
//		{"action": "wait", "frames": 25},
//		{"action": "keyup", "key": "d"},
//		{"action": "snapshot", "label": "moved"},
//		{"action": "press", "key": "space"},
//		{"action": "close"}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "keydown", "keyup", "press":
			code, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.code = code
		case "wait", "snapshot", "close":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one tick. Injected events are delivered by
// the backend's next Pump; the script waits until they have drained.
func (s *Script) Step(hub *EventHub, snap Snapshotter) error {
	if s.done {
		return nil
	}
	if hub.Pending() > 0 {
		return nil
	}
	if s.waitCount > 0 {
		s.waitCount--
		return nil
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return nil
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "keydown":
		hub.InjectKeyDown(st.code)
	case "keyup":
		hub.InjectKeyUp(st.code)
	case "press":
		hub.InjectKeyPress(st.code)
	case "close":
		hub.InjectClose()
	case "snapshot":
		if snap == nil {
			return fmt.Errorf("script step %d: snapshot not supported by this backend", s.cursor-1)
		}
		snap.Snapshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return nil
}
