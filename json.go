package fsm

import (
	"encoding/json"
	"fmt"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Snapshot is a serializable view of a machine's mutable state: the
// current state name and the callback data side channel. The state set
// and transition table are configuration, not state, and are not
// serialized; restoring a snapshot requires a machine built with the same
// configuration.
type Snapshot struct {
	ID      uuid.UUID            `json:"id"`
	Current g.String             `json:"current"`
	Data    g.Map[g.String, any] `json:"data"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine) MarshalJSON() ([]byte, error) {
	snap := Snapshot{
		ID:      m.id,
		Current: m.current.name,
		Data:    m.ctx.Data.Iter().Collect(),
	}

	return json.Marshal(snap)
}

// UnmarshalJSON implements the json.Unmarshaler interface. The snapshot
// must name a registered state; the snapshot id is provenance only and is
// not restored.
func (m *Machine) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal machine snapshot: %w", err)
	}

	state, ok := m.states[snap.Current]
	if !ok {
		return &ErrUnknownState{State: snap.Current}
	}

	m.current = state
	m.ctx.State = state.name
	m.ctx.Data = snap.Data.ToMapSafe()

	return nil
}
