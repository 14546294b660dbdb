package polysandbox

import "sync"

// EventHub is the callback registry shared by every backend. Backends feed
// raw events into its queue from any goroutine and call Dispatch from Pump,
// which runs the callbacks on the loop goroutine.
type EventHub struct {
	keyHandlers   [2][]func(KeyEvent)
	closeHandlers []func()

	mu    sync.Mutex
	queue []hubEvent
}

type hubEvent struct {
	key   KeyEvent
	close bool
}

// Bind registers fn for key events of type t. Handlers fire in
// registration order.
func (h *EventHub) Bind(t KeyEventType, fn func(KeyEvent)) {
	if fn == nil || int(t) >= len(h.keyHandlers) {
		return
	}
	h.keyHandlers[t] = append(h.keyHandlers[t], fn)
}

// OnCloseRequested registers fn to run when the window asks to close.
func (h *EventHub) OnCloseRequested(fn func()) {
	if fn == nil {
		return
	}
	h.closeHandlers = append(h.closeHandlers, fn)
}

// Post queues a key event. Safe for concurrent use.
func (h *EventHub) Post(ev KeyEvent) {
	h.mu.Lock()
	h.queue = append(h.queue, hubEvent{key: ev})
	h.mu.Unlock()
}

// PostClose queues a close request. Safe for concurrent use.
func (h *EventHub) PostClose() {
	h.mu.Lock()
	h.queue = append(h.queue, hubEvent{close: true})
	h.mu.Unlock()
}

// Pending returns the number of queued events.
func (h *EventHub) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// Dispatch drains the queue and runs the matching callbacks. Events posted
// by a callback are delivered on the next Dispatch.
func (h *EventHub) Dispatch() {
	h.mu.Lock()
	pending := h.queue
	h.queue = nil
	h.mu.Unlock()

	for _, ev := range pending {
		if ev.close {
			for _, fn := range h.closeHandlers {
				fn()
			}
			continue
		}
		if int(ev.key.Type) >= len(h.keyHandlers) {
			continue
		}
		for _, fn := range h.keyHandlers[ev.key.Type] {
			fn(ev.key)
		}
	}
}
