package errors

import (
	"github.com/rs/zerolog"

	"github.com/go-drift/driftstore/pkg/log"
)

// LogHandler is an ErrorHandler that writes through the shared zerolog logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger overrides the component logger when non-nil.
	Logger *zerolog.Logger
}

func (h *LogHandler) logger() zerolog.Logger {
	if h.Logger != nil {
		return *h.Logger
	}
	return log.WithComponent("errors")
}

// HandleError logs a StoreError.
func (h *LogHandler) HandleError(err *StoreError) {
	if err == nil {
		return
	}
	l := h.logger()
	ev := l.Error().Err(err.Err).Str("op", err.Op)
	if h.Verbose {
		ev = ev.Str("kind", err.Kind.String())
		if err.Store != "" {
			ev = ev.Str("store", err.Store)
		}
		if err.StackTrace != "" {
			ev = ev.Str("stack", err.StackTrace)
		}
	}
	ev.Msg("store error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	ev := l.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}

// HandleBuildError logs a BuildError.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	l := h.logger()
	ev := l.Error().Str("widget", err.Widget).Str("element", err.Element)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg(err.Error())
}
