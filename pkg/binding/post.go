package binding

import (
	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/platform"
	"github.com/go-drift/driftstore/pkg/store"
)

// Post schedules action on st through the UI thread dispatcher. Stores are
// not safe for concurrent use, so background goroutines hand actions over
// with Post instead of calling Dispatch directly. It reports whether the
// action was scheduled.
//
// A reducer panic has no caller to return to on this path. It is sent to
// the global error handler as a KindTransition StoreError and the frame
// goes on.
func Post[S any](st *store.Store[S], action store.Action) bool {
	if st == nil {
		return false
	}
	return platform.Dispatch(func() {
		if err := st.TryDispatch(action); err != nil {
			var storeErr *errors.StoreError
			if errors.As(err, &storeErr) {
				storeErr.Op = "binding.Post"
				errors.Report(storeErr)
			}
		}
	})
}
