// Package testing provides a widget testing framework for store-bound
// widget trees.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestCounterView(t *testing.T) {
//	    s := store.New(0, counterReducer)
//	    tester := storetest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(binding.Provider[int]{Store: s, Child: CounterView{}})
//
//	    s.Dispatch(store.Action{Type: "INCREMENT"})
//	    tester.Pump()
//
//	    if !tester.Find(storetest.ByText("1")).Exists() {
//	        t.Error("expected '1' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare element tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	DRIFTSTORE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import storetest "github.com/go-drift/driftstore/pkg/testing"
package testing
