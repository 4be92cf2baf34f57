package fsm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statetable/fsm"
)

// workflow builds the same two-state configuration twice; snapshots only
// carry mutable state, so restore targets an identically configured machine.
func workflow(source fsm.EventSource) *fsm.Machine {
	a := fsm.NewState("a")
	b := fsm.NewState("b")

	m := fsm.New("workflow", source, fsm.WithInitialState(a))
	if err := m.AddTableEntry("next", a, fsm.Response{To: b}); err != nil {
		panic(err)
	}

	return m
}

func TestMachine_Snapshot(t *testing.T) {
	t.Parallel()

	m := workflow(fsm.Events("next"))
	m.Context().Data.Set("user_id", 123)
	require.NoError(t, m.Run())

	data, err := json.Marshal(m)
	require.NoError(t, err)

	restored := workflow(fsm.Events())
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, "b", stateName(restored))
	// JSON numbers decode as float64.
	assert.Equal(t, float64(123), restored.Context().Data.Get("user_id").Unwrap())
}

func TestMachine_SnapshotUnknownState(t *testing.T) {
	t.Parallel()

	m := workflow(fsm.Events())
	invalid := `{"current": "nowhere", "data": {}}`

	err := json.Unmarshal([]byte(invalid), m)
	require.Error(t, err)

	var unknown *fsm.ErrUnknownState
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nowhere", string(unknown.State))
}

func TestMachine_SnapshotMalformed(t *testing.T) {
	t.Parallel()

	m := workflow(fsm.Events())
	require.Error(t, json.Unmarshal([]byte(`{"current": 42`), m))
}
