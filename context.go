package fsm

import "github.com/enetx/g"

// Context is handed to every guard, action and hook invocation.
// State holds the name of the state the callback runs for: the old state
// during an exit hook, the new state during the action and entry hook.
// Event and Input describe the current firing; Input is NOT retained past
// it. Data is the machine's side channel for accumulating values across
// transitions — the engine never touches it, only callbacks do, and it is
// serialized with the machine snapshot.
type Context struct {
	State g.String
	Event Event
	Input any
	Data  *g.MapSafe[g.String, any]
}

func newContext(initial g.String) *Context {
	return &Context{
		State: initial,
		Data:  g.NewMapSafe[g.String, any](),
	}
}
