package fsm

import "github.com/enetx/g"

// State is one mode of a machine: a name paired with optional entry and
// exit hooks and an end flag. The name is the sole identity key — the
// machine keys its state set and transition table by Name(), so two
// instances with equal names are interchangeable. States are immutable
// after construction; hooks and the end flag play no part in identity.
type State struct {
	name    g.String
	onEnter Callback
	onExit  Callback
	end     bool
}

// StateOption configures a State during construction.
type StateOption func(*State)

// WithOnEnter sets the entry hook, invoked after every transition into the state.
func WithOnEnter(cb Callback) StateOption {
	return func(s *State) { s.onEnter = cb }
}

// WithOnExit sets the exit hook, invoked before every transition out of the state.
func WithOnExit(cb Callback) StateOption {
	return func(s *State) { s.onExit = cb }
}

// AsEnd marks the state terminal: a transition landing on it halts the run loop.
func AsEnd() StateOption {
	return func(s *State) { s.end = true }
}

// NewState creates a state with the given name.
func NewState(name g.String, opts ...StateOption) *State {
	s := &State{name: name}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the state's identity.
func (s *State) Name() g.String { return s.name }

// IsEnd reports whether entering the state terminates a run.
func (s *State) IsEnd() bool { return s.end }

// doEntry invokes the entry hook if one is set.
func (s *State) doEntry(ctx *Context) error {
	if s.onEnter == nil {
		return nil
	}

	return s.onEnter(ctx)
}

// doExit invokes the exit hook if one is set.
func (s *State) doExit(ctx *Context) error {
	if s.onExit == nil {
		return nil
	}

	return s.onExit(ctx)
}
