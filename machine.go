// Package fsm implements a table-driven finite state machine execution
// engine: named states with entry/exit hooks, a transition table keyed by
// (event, source state), and a run loop that pulls firings from an event
// source and performs the exit/assign/action/entry sequence until an end
// state is reached or the source is exhausted. It is built with types and
// utilities from the github.com/enetx/g library.
package fsm

import (
	"fmt"
	"log/slog"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Option configures a Machine during construction.
type Option func(*Machine)

// WithInitialState replaces the default "initial" starting state.
func WithInitialState(s *State) Option {
	return func(m *Machine) {
		if s != nil {
			m.initial = s
		}
	}
}

// WithInitialAction sets a hook invoked once per Run, before any firing is consumed.
func WithInitialAction(cb Callback) Option {
	return func(m *Machine) { m.initialAction = cb }
}

// WithEndAction sets a hook invoked once per Run after the loop halts,
// whether by end state or by source exhaustion.
func WithEndAction(cb Callback) Option {
	return func(m *Machine) { m.endAction = cb }
}

// WithLogger sets the logger for dispatch tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

// WithID pins the machine id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(m *Machine) { m.id = id }
}

// New creates a machine reading from source. The machine always has a
// valid current state from construction: unless WithInitialState overrides
// it, the run starts from a distinguished state named "initial". States
// and table entries are added incrementally before Run.
func New(name g.String, source EventSource, opts ...Option) *Machine {
	m := &Machine{
		name:   name,
		id:     uuid.New(),
		source: source,
		states: g.NewMap[g.String, *State](),
		events: g.NewSet[Event](),
		table:  g.NewMap[tableKey, Response](),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.initial == nil {
		m.initial = NewState("initial")
	}

	m.current = m.initial
	m.states[m.initial.name] = m.initial

	if m.logger == nil {
		m.logger = slog.Default()
	}

	m.logger = m.logger.With("machine", m.name, "id", m.id)
	m.ctx = newContext(m.current.name)

	return m
}

// Name returns the machine's name.
func (m *Machine) Name() g.String { return m.name }

// ID returns the machine's id, used for log and snapshot correlation.
func (m *Machine) ID() uuid.UUID { return m.id }

// Current returns the machine's current state.
func (m *Machine) Current() *State { return m.current }

// Context returns the machine's context for callback data.
func (m *Machine) Context() *Context { return m.ctx }

// AddState registers a state in the known-state set. Registration is
// idempotent with set semantics: a state whose name is already present is
// left untouched.
func (m *Machine) AddState(s *State) *Machine {
	if s == nil {
		return m
	}

	if !m.states.Contains(s.name) {
		m.states[s.name] = s
	}

	return m
}

// AddEvent registers an event with the machine. Idempotent; routing an
// event still requires a table entry.
func (m *Machine) AddEvent(event Event) *Machine {
	m.events.Insert(event)
	return m
}

// AddTableEntry registers event, state and response.To, then routes
// (event, state) to response, overwriting any prior response for that
// pair. This is the only mutation surface for the transition table and is
// meant to be called before Run.
func (m *Machine) AddTableEntry(event Event, state *State, response Response) error {
	if state == nil || response.To == nil {
		return ErrNilState
	}

	m.AddEvent(event)
	m.AddState(state)
	m.AddState(response.To)

	m.table[tableKey{Key: event, Value: state.name}] = response

	return nil
}

// States returns the registered states, in no particular order.
func (m *Machine) States() g.Slice[*State] {
	var states g.Slice[*State]
	for _, s := range m.states {
		states.Push(s)
	}

	return states
}

// Events returns the registered events, in no particular order.
func (m *Machine) Events() g.Slice[Event] {
	return m.events.ToSlice()
}

// Run drives the machine: the initial action once, then one firing at a
// time from the source until an end state is entered or the source is
// exhausted, then the end action once. Dispatch per firing is a single
// composite-key lookup. No entry for (event, current state) means the
// firing is silently ignored. A false guard suppresses the transition for
// that firing only and skips the end-state check. Otherwise the exit hook
// of the old state, the response action and the entry hook of the new
// state run in that fixed order around the state change.
//
// The first callback error (or recovered panic) aborts the run and is
// returned as an *ErrCallback, leaving the machine wherever the ordering
// had reached. Run resets nothing: calling it again resumes pulling the
// unconsumed remainder of the source with the same current state.
func (m *Machine) Run() error {
	if m.source == nil {
		return ErrNoSource
	}

	m.logger.Debug("run started", "state", m.current.name)

	if err := m.exec("Initial", m.current.name, m.initialAction); err != nil {
		return err
	}

	for {
		next := m.source.Next()
		if next.IsNone() {
			m.logger.Debug("event source exhausted", "state", m.current.name)
			break
		}

		firing := next.Some()
		m.ctx.Event = firing.Event
		m.ctx.Input = firing.Params

		if response, ok := m.table[tableKey{Key: firing.Event, Value: m.current.name}]; ok {
			if response.Guard != nil && !response.Guard(m.ctx) {
				m.logger.Debug("guard rejected transition", "event", firing.Event, "state", m.current.name)
				continue
			}

			if err := m.transition(firing.Event, response); err != nil {
				return err
			}
		} else {
			m.logger.Debug("no transition", "event", firing.Event, "state", m.current.name)
		}

		if m.current.end {
			m.logger.Debug("end state reached", "state", m.current.name)
			break
		}
	}

	return m.exec("End", m.current.name, m.endAction)
}

// transition performs one state change: exit hook of the old state, the
// assignment, the response action with the firing's parameters, entry hook
// of the new state. Callbacks may rely on this order.
func (m *Machine) transition(event Event, response Response) error {
	from := m.current
	to := response.To

	m.ctx.State = from.name
	if err := m.exec("OnExit", from.name, from.doExit); err != nil {
		return err
	}

	m.current = to
	m.ctx.State = to.name

	if err := m.exec("Action", to.name, response.Action); err != nil {
		return err
	}

	if err := m.exec("OnEnter", to.name, to.doEntry); err != nil {
		return err
	}

	m.logger.Debug("transition executed", "from", from.name, "to", to.name, "event", event)

	return nil
}

// exec runs a callback with panic recovery, wrapping failures in *ErrCallback.
func (m *Machine) exec(hook string, state g.String, cb func(*Context) error) (err error) {
	if cb == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{Hook: hook, State: state, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if cbErr := cb(m.ctx); cbErr != nil {
		err = &ErrCallback{Hook: hook, State: state, Err: cbErr}
	}

	return err
}
