package fsm_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statetable/fsm"
)

func TestSyncMachine_Delegation(t *testing.T) {
	t.Parallel()

	a := fsm.NewState("a")
	b := fsm.NewState("b", fsm.AsEnd())

	sm := fsm.NewSync(fsm.New("synced", fsm.Events("go"), fsm.WithInitialState(a)))
	sm.AddState(a).AddEvent("go")
	require.NoError(t, sm.AddTableEntry("go", a, fsm.Response{To: b}))

	assert.Equal(t, "a", string(sm.Current().Name()))
	require.NoError(t, sm.Run())
	assert.Equal(t, "b", string(sm.Current().Name()))

	assert.Equal(t, "synced", string(sm.Name()))
	assert.Equal(t, 2, len(sm.States()))
	assert.Equal(t, 1, len(sm.Events()))
	assert.Contains(t, string(sm.ToDOT()), `"a" -> "b"`)

	data, err := json.Marshal(sm)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current":"b"`)
}

func TestSyncMachine_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	a := fsm.NewState("a")
	sm := fsm.NewSync(fsm.New("readers", fsm.Events(), fsm.WithInitialState(a)))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = sm.Current()
				_ = sm.States()
				_ = sm.ID()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, "a", string(sm.Current().Name()))
}
