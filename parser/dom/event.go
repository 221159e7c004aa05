package dom

import "github.com/heathj/domtree/parser/webidl"

type EventPhase uint16

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case CapturingPhase:
		return "capturing"
	case AtTargetPhase:
		return "at-target"
	case BubblingPhase:
		return "bubbling"
	}
	return "none"
}

// EventOption overrides an Event default at construction.
type EventOption func(*Event)

func WithBubbles(b bool) EventOption {
	return func(e *Event) { e.bubbles = b }
}

func WithCancelable(c bool) EventOption {
	return func(e *Event) { e.cancelable = c }
}

func WithComposed(c bool) EventOption {
	return func(e *Event) { e.composed = c }
}

func WithTrusted(t bool) EventOption {
	return func(e *Event) { e.isTrusted = t }
}

// WithDetail attaches an arbitrary payload, as CustomEvent does.
func WithDetail(v interface{}) EventOption {
	return func(e *Event) { e.detail = v }
}

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	eventType     string
	target        EventCapable
	currentTarget EventCapable
	eventPhase    EventPhase
	path          []EventCapable

	bubbles    bool
	cancelable bool
	composed   bool
	isTrusted  bool

	defaultPrevented         bool
	stopPropagation          bool
	stopImmediatePropagation bool
	dispatching              bool

	timeStamp webidl.DOMHighResTimeStamp
	detail    interface{}
}

// NewEvent builds an event that bubbles and is cancelable unless opts say
// otherwise.
func NewEvent(eventType string, opts ...EventOption) *Event {
	e := &Event{
		eventType:  eventType,
		bubbles:    true,
		cancelable: true,
		isTrusted:  true,
		timeStamp:  webidl.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Event) Type() string                          { return e.eventType }
func (e *Event) Target() EventCapable                  { return e.target }
func (e *Event) SrcElement() EventCapable              { return e.target }
func (e *Event) CurrentTarget() EventCapable           { return e.currentTarget }
func (e *Event) EventPhase() EventPhase                { return e.eventPhase }
func (e *Event) Bubbles() bool                         { return e.bubbles }
func (e *Event) Cancelable() bool                      { return e.cancelable }
func (e *Event) Composed() bool                        { return e.composed }
func (e *Event) IsTrusted() bool                       { return e.isTrusted }
func (e *Event) DefaultPrevented() bool                { return e.defaultPrevented }
func (e *Event) TimeStamp() webidl.DOMHighResTimeStamp { return e.timeStamp }
func (e *Event) Detail() interface{}                   { return e.detail }

// ComposedPath lists the targets of the running dispatch, target first.
// It is empty outside of a dispatch.
func (e *Event) ComposedPath() []EventCapable {
	if !e.dispatching {
		return nil
	}
	path := make([]EventCapable, len(e.path))
	copy(path, e.path)
	return path
}

// PreventDefault only has an effect on cancelable events.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// StopPropagation lets the remaining listeners of the current target run
// but keeps the event from reaching any other target.
func (e *Event) StopPropagation() {
	e.stopPropagation = true
}

// StopImmediatePropagation also skips the remaining listeners of the current
// target.
func (e *Event) StopImmediatePropagation() {
	e.stopImmediatePropagation = true
	e.StopPropagation()
}

// ReturnValue is the legacy mirror of the propagation flag. Writing false
// cancels the event.
func (e *Event) ReturnValue() bool {
	return !e.stopPropagation
}

func (e *Event) SetReturnValue(v bool) {
	if !v {
		e.PreventDefault()
	}
}

// CancelBubble is https://dom.spec.whatwg.org/#dom-event-cancelbubble
func (e *Event) CancelBubble() bool {
	return e.stopPropagation
}

func (e *Event) SetCancelBubble(v bool) {
	if v {
		e.StopPropagation()
	}
}

// InitEvent re-initializes an event so one instance can be dispatched again.
// It does nothing while the event is being dispatched.
func (e *Event) InitEvent(eventType string, bubbles, cancelable bool) {
	if e.dispatching {
		return
	}
	e.eventType = eventType
	e.bubbles = bubbles
	e.cancelable = cancelable
	e.stopPropagation = false
	e.stopImmediatePropagation = false
	e.defaultPrevented = false
	e.target = nil
}
