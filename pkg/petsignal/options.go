package petsignal

type options struct {
	signalFile string
	signals    []Signal
	workers    int
	runnerUps  int
}

// Option configures an Engine.
type Option func(*options)

// WithSignalFile loads the signal catalogue from a YAML file instead of
// the embedded default.
func WithSignalFile(path string) Option {
	return func(o *options) {
		o.signalFile = path
	}
}

// WithSignals uses the given signals as the catalogue. Takes precedence
// over WithSignalFile.
func WithSignals(signals []Signal) Option {
	return func(o *options) {
		o.signals = signals
	}
}

// WithWorkers bounds the concurrency of InterpretBatch. Default: 4.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithRunnerUps sets how many supporting signals follow the top one in a
// translation. Default: 2.
func WithRunnerUps(n int) Option {
	return func(o *options) {
		o.runnerUps = n
	}
}

func defaultOptions() options {
	return options{
		workers:   4,
		runnerUps: 2,
	}
}
