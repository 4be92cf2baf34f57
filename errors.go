package fsm

import (
	"errors"
	"fmt"

	"github.com/enetx/g"
)

var (
	// ErrNilState is returned by AddTableEntry when the source state or the
	// response's target state is nil. The table only routes between
	// registered states; a nil reference discovered mid-run would corrupt
	// the current-state invariant, so it is rejected at registration time.
	ErrNilState = errors.New("fsm: nil state in table entry")

	// ErrNoSource is returned by Run when the machine was constructed
	// without an event source.
	ErrNoSource = errors.New("fsm: no event source")
)

// ErrCallback is returned from Run when a hook, transition action, initial
// action or end action returns an error or panics. It wraps the original
// error, allowing it to be inspected with errors.Is and errors.As. The run
// is aborted where the callback failed: if a transition action fails, the
// exit hook has already run and the state has already changed, but the
// entry hook has not.
type ErrCallback struct {
	// Hook is the slot where the error occurred: "Initial", "OnExit",
	// "Action", "OnEnter" or "End".
	Hook string
	// State is the state the callback ran for.
	State g.String
	// Err is the original error, or the error created after recovering a panic.
	Err error
}

func (e *ErrCallback) Error() string {
	return fmt.Sprintf("fsm: error in %s callback for state %q: %v", e.Hook, e.State, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrCallback) Unwrap() error { return e.Err }

// ErrUnknownState is returned when a snapshot names a state that was never
// registered on the machine. This prevents restoring the machine into an
// undeclared state.
type ErrUnknownState struct {
	State g.String
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("fsm: unknown state %q", e.State)
}

// IsCallbackError reports whether err originated in a user callback.
func IsCallbackError(err error) bool {
	var e *ErrCallback
	return errors.As(err, &e)
}
