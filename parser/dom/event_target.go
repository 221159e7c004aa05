package dom

import "github.com/pkg/errors"

// EventListener is a listener handle. Registrations are keyed by the handle
// pointer, so keep it around to remove the listener later.
// https://dom.spec.whatwg.org/#callbackdef-eventlistener
type EventListener struct {
	handle func(e *Event)
}

func NewEventListener(fn func(e *Event)) *EventListener {
	return &EventListener{handle: fn}
}

func (l *EventListener) HandleEvent(e *Event) {
	l.handle(e)
}

type listenerOptions struct {
	capture bool
	once    bool
	signal  *AbortSignal
}

// ListenerOption is one of the addEventListener options.
// https://dom.spec.whatwg.org/#dictdef-addeventlisteneroptions
type ListenerOption func(*listenerOptions)

// UseCapture runs the listener during the capturing phase instead of the
// bubbling phase.
func UseCapture() ListenerOption {
	return func(o *listenerOptions) { o.capture = true }
}

// Once removes the listener right before its first invocation.
func Once() ListenerOption {
	return func(o *listenerOptions) { o.once = true }
}

// WithSignal removes the listener when s is aborted.
func WithSignal(s *AbortSignal) ListenerOption {
	return func(o *listenerOptions) { o.signal = s }
}

type listenerEntry struct {
	listener *EventListener
	listenerOptions
	removed bool
}

// EventCapable is anything events can be dispatched to.
type EventCapable interface {
	AddEventListener(eventType string, l *EventListener, opts ...ListenerOption)
	RemoveEventListener(eventType string, l *EventListener, capture bool)
	DispatchEvent(e *Event) (bool, error)
	eventTarget() *EventTarget
}

// EventTarget keeps listeners per event type in registration order.
// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget struct {
	listeners map[string][]*listenerEntry
}

func (t *EventTarget) eventTarget() *EventTarget {
	return t
}

func (t *EventTarget) find(eventType string, l *EventListener, capture bool) int {
	for i, le := range t.listeners[eventType] {
		if le.listener == l && le.capture == capture {
			return i
		}
	}
	return -1
}

// AddEventListener registers l for eventType. Registering the same
// (type, listener, capture) again does nothing.
func (t *EventTarget) AddEventListener(eventType string, l *EventListener, opts ...ListenerOption) {
	if l == nil {
		return
	}
	le := &listenerEntry{listener: l}
	for _, opt := range opts {
		opt(&le.listenerOptions)
	}
	if le.signal != nil && le.signal.Aborted() {
		return
	}
	if t.find(eventType, l, le.capture) >= 0 {
		return
	}
	if t.listeners == nil {
		t.listeners = make(map[string][]*listenerEntry)
	}
	t.listeners[eventType] = append(t.listeners[eventType], le)
	if le.signal != nil {
		le.signal.addAlgorithm(func() {
			t.RemoveEventListener(eventType, l, le.capture)
		})
	}
}

// RemoveEventListener drops a matching registration. Removing a listener
// that is not registered is fine.
func (t *EventTarget) RemoveEventListener(eventType string, l *EventListener, capture bool) {
	i := t.find(eventType, l, capture)
	if i < 0 {
		return
	}
	t.removeAt(eventType, i)
}

func (t *EventTarget) removeAt(eventType string, i int) {
	list := t.listeners[eventType]
	list[i].removed = true
	// a dispatch may be iterating over the old backing array
	next := make([]*listenerEntry, 0, len(list)-1)
	next = append(next, list[:i]...)
	next = append(next, list[i+1:]...)
	if len(next) == 0 {
		delete(t.listeners, eventType)
		return
	}
	t.listeners[eventType] = next
}

func (t *EventTarget) removeEntry(eventType string, le *listenerEntry) {
	for i, e := range t.listeners[eventType] {
		if e == le {
			t.removeAt(eventType, i)
			return
		}
	}
}

// HasEventListeners reports whether anything listens for eventType.
func (t *EventTarget) HasEventListeners(eventType string) bool {
	return len(t.listeners[eventType]) > 0
}

// DispatchEvent sends e through the ancestors of n, as they are when the
// call starts. It returns false if a listener canceled the event.
func (n *Node) DispatchEvent(e *Event) (bool, error) {
	var parents []EventCapable
	for p := n.parentNode; p != nil; p = p.parentNode {
		parents = append(parents, p)
	}
	return dispatch(e, n, parents)
}

// https://dom.spec.whatwg.org/#concept-event-dispatch
//
// parents is the snapshot of the propagation path above target, nearest
// first. Listeners that detach nodes do not change where the event goes.
func dispatch(e *Event, target EventCapable, parents []EventCapable) (bool, error) {
	if e.dispatching {
		return false, errors.Wrapf(ErrInvalidState, "event %q is already being dispatched", e.eventType)
	}
	e.dispatching = true
	e.stopPropagation = false
	e.stopImmediatePropagation = false
	e.target = target
	e.path = append([]EventCapable{target}, parents...)
	defer func() {
		e.dispatching = false
		e.eventPhase = NoneEventPhase
		e.currentTarget = nil
		e.path = nil
		e.stopPropagation = false
		e.stopImmediatePropagation = false
	}()

	e.eventPhase = CapturingPhase
	for i := len(parents) - 1; i >= 0 && !e.stopPropagation; i-- {
		invokeListeners(e, parents[i])
	}

	if !e.stopImmediatePropagation {
		e.eventPhase = AtTargetPhase
		invokeListeners(e, target)
	}

	if e.bubbles {
		e.eventPhase = BubblingPhase
		for i := 0; i < len(parents) && !e.stopPropagation; i++ {
			invokeListeners(e, parents[i])
		}
	}

	return !e.defaultPrevented, nil
}

// https://dom.spec.whatwg.org/#concept-event-listener-inner-invoke
func invokeListeners(e *Event, owner EventCapable) {
	t := owner.eventTarget()
	listeners := t.listeners[e.eventType]
	if len(listeners) == 0 {
		return
	}
	e.currentTarget = owner
	for _, le := range listeners {
		if le.removed {
			continue
		}
		if e.eventPhase == CapturingPhase && !le.capture {
			continue
		}
		if e.eventPhase == BubblingPhase && le.capture {
			continue
		}
		if le.once {
			t.removeEntry(e.eventType, le)
		}
		le.listener.HandleEvent(e)
		if e.stopImmediatePropagation {
			return
		}
	}
}
