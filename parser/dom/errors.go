package dom

import "github.com/pkg/errors"

// Structural-integrity violations. These point at a caller bug and are
// never coerced into a no-op.
var (
	// ErrNotFound is https://webidl.spec.whatwg.org/#notfounderror
	ErrNotFound = errors.New("not found")
	// ErrHierarchyRequest is https://webidl.spec.whatwg.org/#hierarchyrequesterror
	ErrHierarchyRequest = errors.New("hierarchy request")
	// ErrWrongDocument is returned when a node is moved into a tree owned by
	// another document. Nodes never change their owner document.
	ErrWrongDocument = errors.New("wrong document")
)

var (
	// ErrNotSupported marks operations that are deliberately unimplemented.
	ErrNotSupported = errors.New("not implemented")
	// ErrInvalidState is returned when an event is dispatched while it is
	// already being dispatched.
	ErrInvalidState = errors.New("invalid state")
	// ErrSyntax is returned for selectors that do not compile.
	ErrSyntax = errors.New("syntax error")
)

func notSupported(op string) error {
	return errors.Wrap(ErrNotSupported, op)
}
