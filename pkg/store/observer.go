package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Observer is notified around every dispatch that reaches the reducer and
// on every rename. Implementations must not dispatch to the observed store.
type Observer interface {
	// OnDispatchStart is called before the reducer runs. The returned
	// context is handed back to OnDispatchComplete.
	OnDispatchStart(ctx context.Context, store, actionType string) context.Context
	// OnDispatchComplete is called after the reducer returns, before
	// listeners are notified. err is non-nil when the reducer panicked; the
	// panic continues to propagate after the call.
	OnDispatchComplete(ctx context.Context, store, actionType string, duration time.Duration, err error)
	// OnRename is called after the name changes, before listeners are notified.
	OnRename(ctx context.Context, oldName, newName string)
}

type logObserver struct {
	log zerolog.Logger
}

func (o *logObserver) OnDispatchStart(ctx context.Context, _, _ string) context.Context {
	return ctx
}

func (o *logObserver) OnDispatchComplete(_ context.Context, store, actionType string, duration time.Duration, err error) {
	if err != nil {
		o.log.Error().Err(err).
			Str("store", store).
			Str("action", actionType).
			Msg("reducer fault")
		return
	}
	o.log.Debug().
		Str("store", store).
		Str("action", actionType).
		Dur("duration", duration).
		Msg("dispatch")
}

func (o *logObserver) OnRename(_ context.Context, oldName, newName string) {
	o.log.Info().
		Str("store", newName).
		Str("previous", oldName).
		Msg("store renamed")
}
