package scoreboard

import (
	"github.com/rs/zerolog"
)

type options struct {
	logger zerolog.Logger
}

// Option customizes a store
type Option func(*options)

// WithLogger sets the logger for skipped records and store events
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
