package fsm

import (
	"github.com/enetx/g"
	"github.com/google/uuid"
)

// StateMachine is the runtime surface shared by Machine and SyncMachine.
type StateMachine interface {
	AddTableEntry(Event, *State, Response) error
	Run() error
	Name() g.String
	ID() uuid.UUID
	Current() *State
	Context() *Context
	States() g.Slice[*State]
	Events() g.Slice[Event]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

var (
	_ StateMachine = (*Machine)(nil)
	_ StateMachine = (*SyncMachine)(nil)
)
