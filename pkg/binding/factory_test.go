package binding

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/driftstore/pkg/core"
	"github.com/go-drift/driftstore/pkg/store"
	storetest "github.com/go-drift/driftstore/pkg/testing"
)

func TestCreate_UseNeedsNoProvider(t *testing.T) {
	h := Create(appState{}, appReducer, store.WithName("bound"))
	builds := 0
	tester := storetest.NewWidgetTesterWithT(t)
	require.NoError(t, tester.PumpWidget(probe[appState]{
		use:    h.Use,
		text:   func(a appState) string { return strconv.Itoa(a.Count) },
		builds: &builds,
	}))

	h.Dispatch(increment())
	tester.Pump()

	assert.True(t, tester.Find(storetest.ByText("1")).Exists())
	assert.Equal(t, "bound", h.Store().Name())

	h.Store().SetName("renamed")
	tester.Pump()
	assert.Equal(t, 3, builds)
}

func TestCreate_IgnoresAmbientProvider(t *testing.T) {
	h := Create(appState{Count: 5}, appReducer)
	ambient := store.New(appState{Count: 99}, appReducer)

	tester := storetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Provider[appState]{Store: ambient, Child: probe[int]{
		use: func(s core.StateHolder) *Selection[int] {
			return Select(h, s, func(a appState) int { return a.Count })
		},
		text: strconv.Itoa,
	}})

	assert.True(t, tester.Find(storetest.ByText("5")).Exists())
	assert.Equal(t, 0, ambient.ListenerCount())
}

func TestSelect_UsesComparator(t *testing.T) {
	h := Create(appState{}, appReducer)
	builds := 0
	tester := storetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(probe[[]int]{
		use: func(s core.StateHolder) *Selection[[]int] {
			return Select(h, s, func(a appState) []int { return []int{a.Count} }, store.ShallowEqual[[]int])
		},
		text:   func(v []int) string { return strconv.Itoa(v[0]) },
		builds: &builds,
	})

	h.Dispatch(label("same count"))
	tester.Pump()
	assert.Equal(t, 1, builds)

	h.Dispatch(increment())
	tester.Pump()
	assert.Equal(t, 2, builds)
	assert.True(t, tester.Find(storetest.ByText("1")).Exists())
}

func TestSelection_Close(t *testing.T) {
	h := Create(appState{}, appReducer)
	var sel *Selection[int]
	tester := storetest.NewWidgetTesterWithT(t)
	tester.PumpWidget(probe[int]{
		use: func(s core.StateHolder) *Selection[int] {
			sel = Select(h, s, func(a appState) int { return a.Count })
			return sel
		},
		text: strconv.Itoa,
	})
	require.Equal(t, 1, h.Store().ListenerCount())

	sel.Close()

	assert.Equal(t, 0, h.Store().ListenerCount())
	h.Dispatch(increment())
	assert.Equal(t, 0, sel.Value())
}
