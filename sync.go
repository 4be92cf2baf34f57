package fsm

import (
	"github.com/enetx/g"
	"github.com/google/uuid"
)

// NewSync wraps a machine for exposure to multiple goroutines. The engine
// itself stays a single-threaded pull loop; the wrapper only serializes
// access from outside callers. Run holds the write lock for the entire
// run, so readers block until the loop halts.
func NewSync(m *Machine) *SyncMachine {
	return &SyncMachine{m: m}
}

// AddState is the thread-safe version of Machine.AddState.
func (s *SyncMachine) AddState(state *State) *SyncMachine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.AddState(state)
	return s
}

// AddEvent is the thread-safe version of Machine.AddEvent.
func (s *SyncMachine) AddEvent(event Event) *SyncMachine {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.AddEvent(event)
	return s
}

// AddTableEntry is the thread-safe version of Machine.AddTableEntry.
func (s *SyncMachine) AddTableEntry(event Event, state *State, response Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.AddTableEntry(event, state, response)
}

// Run is the thread-safe version of Machine.Run.
func (s *SyncMachine) Run() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.Run()
}

// Name is the thread-safe version of Machine.Name.
func (s *SyncMachine) Name() g.String {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Name()
}

// ID is the thread-safe version of Machine.ID.
func (s *SyncMachine) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.ID()
}

// Current is the thread-safe version of Machine.Current.
func (s *SyncMachine) Current() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Current()
}

// Context is the thread-safe version of Machine.Context.
// The Data side channel it exposes is itself safe for concurrent use;
// Input and Event are only meaningful inside callbacks.
func (s *SyncMachine) Context() *Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Context()
}

// States is the thread-safe version of Machine.States.
func (s *SyncMachine) States() g.Slice[*State] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.States()
}

// Events is the thread-safe version of Machine.Events.
func (s *SyncMachine) Events() g.Slice[Event] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.Events()
}

// ToDOT is the thread-safe version of Machine.ToDOT.
func (s *SyncMachine) ToDOT() g.String {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine snapshot.
func (s *SyncMachine) MarshalJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.m.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// restoration of a machine snapshot.
func (s *SyncMachine) UnmarshalJSON(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.m.UnmarshalJSON(data)
}
