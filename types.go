package fsm

import (
	"log/slog"
	"sync"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

type (
	// Event names a stimulus that may trigger a transition. Events are
	// opaque: equality is exact match, there is no internal structure.
	Event g.String

	// Callback is a hook run on state entry, state exit, run start or run
	// end. Errors abort the run.
	Callback func(ctx *Context) error
	// ActionFunc is a transition action, invoked between the exit hook of
	// the old state and the entry hook of the new one. The parameters that
	// accompanied the triggering event are available as ctx.Input.
	ActionFunc func(ctx *Context) error
	// GuardFunc decides whether a matched transition may fire. Returning
	// false suppresses the transition for that firing only.
	GuardFunc func(ctx *Context) bool

	// Firing pairs an event with the parameters accompanying it. Event
	// sources produce firings; the run loop consumes them in order.
	Firing struct {
		Event  Event
		Params any
	}

	// Response describes the registered effect for one (event, state)
	// pair: the state to move to, an optional action and an optional guard.
	Response struct {
		To     *State
		Action ActionFunc
		Guard  GuardFunc
	}

	// tableKey is the composite (event, source state name) dispatch key.
	tableKey = g.Pair[Event, g.String]

	// Machine is the execution engine: it owns the state set, the
	// transition table, the current-state pointer and the run loop that
	// consumes an event source and performs transitions.
	Machine struct {
		name    g.String
		id      uuid.UUID
		source  EventSource
		initial *State
		current *State
		states  g.Map[g.String, *State]
		events  g.Set[Event]
		table   g.Map[tableKey, Response]

		initialAction Callback
		endAction     Callback

		ctx    *Context
		logger *slog.Logger
	}

	// SyncMachine is a thread-safe wrapper around a Machine.
	// It protects all state-mutating and state-reading operations with a
	// sync.RWMutex for machines exposed to multiple goroutines. The engine
	// itself stays a single-threaded pull loop.
	SyncMachine struct {
		m  *Machine
		mu sync.RWMutex
	}
)
