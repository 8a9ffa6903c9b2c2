package hub

import "go.uber.org/zap"

type options struct {
	logger         *zap.Logger
	goroutineCheck bool
}

func (o *options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// Option configures a Hub.
type Option func(o *options)

func defaultOptions() *options {
	return &options{
		logger: zap.NewNop(),
	}
}

// WithLogger makes the Hub log connections and emissions at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithGoroutineCheck makes every Hub method panic with ErrWrongGoroutine when
// it is called from a goroutine other than the one that created the Hub.
func WithGoroutineCheck(enabled bool) Option {
	return func(o *options) {
		o.goroutineCheck = enabled
	}
}
