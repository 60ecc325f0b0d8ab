package calc

// Logger receives diagnostic messages from the evaluator.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// Option configures a computation.
type Option func(*config)

type config struct {
	logger        Logger
	checkOverflow bool
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sends a debug message for every subexpression that fails.
func WithLogger(logger Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithOverflowCheck makes add, sub, mult and div fail with ErrOverflow
// instead of wrapping around.
func WithOverflowCheck() Option {
	return func(cfg *config) {
		cfg.checkOverflow = true
	}
}
