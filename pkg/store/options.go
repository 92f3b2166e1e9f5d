package store

import "github.com/rs/zerolog"

// DefaultName is the name given to stores created without WithName.
const DefaultName = "default"

// Option configures a Store.
type Option func(*config)

type config struct {
	name      string
	observers []Observer
}

// WithName sets the initial store name. An empty name keeps DefaultName.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithObserver registers an observer for dispatches and renames.
// Observers are called in registration order. Nil observers are ignored.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithLogger logs dispatches at debug level, renames at info level and
// reducer faults at error level.
func WithLogger(l zerolog.Logger) Option {
	return WithObserver(&logObserver{log: l})
}
