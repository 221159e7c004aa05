package dom

// AbortController is https://dom.spec.whatwg.org/#interface-abortcontroller
type AbortController struct {
	signal *AbortSignal
}

func NewAbortController() *AbortController {
	return &AbortController{signal: &AbortSignal{}}
}

func (c *AbortController) Signal() *AbortSignal {
	return c.signal
}

// Abort aborts the controller's signal with reason.
func (c *AbortController) Abort(reason interface{}) {
	c.signal.signalAbort(reason)
}

// AbortSignal is an event target that fires "abort" once.
// https://dom.spec.whatwg.org/#interface-AbortSignal
type AbortSignal struct {
	EventTarget

	aborted    bool
	reason     interface{}
	algorithms []func()
}

func (s *AbortSignal) Aborted() bool {
	return s.aborted
}

func (s *AbortSignal) Reason() interface{} {
	return s.reason
}

// DispatchEvent delivers e to the signal alone; signals have no parents.
func (s *AbortSignal) DispatchEvent(e *Event) (bool, error) {
	return dispatch(e, s, nil)
}

func (s *AbortSignal) addAlgorithm(fn func()) {
	if s.aborted {
		return
	}
	s.algorithms = append(s.algorithms, fn)
}

// https://dom.spec.whatwg.org/#abortsignal-signal-abort
func (s *AbortSignal) signalAbort(reason interface{}) {
	if s.aborted {
		return
	}
	s.aborted = true
	s.reason = reason
	algorithms := s.algorithms
	s.algorithms = nil
	for _, fn := range algorithms {
		fn()
	}
	// a fresh event is never mid-dispatch
	_, _ = s.DispatchEvent(NewEvent("abort", WithBubbles(false), WithCancelable(false)))
}
