package polysandbox

// InjectKeyDown queues a synthetic key press. It is delivered on the next
// Dispatch exactly like a real one.
func (h *EventHub) InjectKeyDown(code KeyCode) {
	h.Post(KeyEvent{Type: KeyDown, Code: code})
}

// InjectKeyUp queues a synthetic key release.
func (h *EventHub) InjectKeyUp(code KeyCode) {
	h.Post(KeyEvent{Type: KeyUp, Code: code})
}

// InjectKeyPress is a convenience that queues a press followed by a release.
// Both are delivered in the same Dispatch, so a movement key pressed this
// way never produces motion; use InjectKeyDown and InjectKeyUp across
// ticks for that.
func (h *EventHub) InjectKeyPress(code KeyCode) {
	h.InjectKeyDown(code)
	h.InjectKeyUp(code)
}

// InjectClose queues a window-close request.
func (h *EventHub) InjectClose() {
	h.PostClose()
}
