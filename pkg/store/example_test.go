package store_test

import (
	"fmt"

	"github.com/go-drift/driftstore/pkg/store"
)

// This example shows a counter store with a rename.
func ExampleNew() {
	s := store.New(map[string]int{"count": 0}, func(state map[string]int, a store.Action) map[string]int {
		switch a.Type {
		case "INCREMENT":
			return map[string]int{"count": state["count"] + 1}
		}
		return state
	})

	unsubscribe := s.Subscribe(func() {
		fmt.Printf("%s: count=%d\n", s.Name(), s.State()["count"])
	})
	defer unsubscribe()

	s.Dispatch(store.Action{Type: "INCREMENT"})
	s.Dispatch(store.Action{Type: "INCREMENT"})
	s.Dispatch(store.RenameAction("clicks"))

	// Output:
	// default: count=1
	// default: count=2
	// clicks: count=2
}

// This example shows how the equality helpers differ on maps.
func ExampleShallowEqual() {
	a := map[string]any{"id": 1}
	b := map[string]any{"id": 1}

	fmt.Println(store.Identical(a, b))
	fmt.Println(store.ShallowEqual(a, b))

	// Output:
	// false
	// true
}
