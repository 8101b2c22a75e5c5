package frontdesk

// RunLimits holds the maximum number of consecutive people served from each
// tier before the scheduler cedes to the next tier.
type RunLimits struct {
	High int
	Mid  int
	Low  int
}

// DefaultRunLimits approximates a 3:1:1 split between the High, Mid and Low
// tiers.
var DefaultRunLimits = RunLimits{High: 3, Mid: 1, Low: 1}

// Options holds configuration options for a [Desk] and its [Scheduler].
type Options struct {
	Archive   Archive
	Metrics   MetricsHook
	RunLimits RunLimits
}

// Option is a function that configures [Options].
type Option func(*Options)

// WithArchive sets the archive the attendance history is loaded from and
// saved to.
func WithArchive(a Archive) Option {
	return func(o *Options) {
		o.Archive = a
	}
}

// WithMetricsHook sets the metrics hook for the [Desk].
func WithMetricsHook(hook MetricsHook) Option {
	return func(o *Options) {
		o.Metrics = hook
	}
}

// WithRunLimits overrides the per-tier run limits. Limits below one fall back
// to the corresponding [DefaultRunLimits] value.
func WithRunLimits(limits RunLimits) Option {
	return func(o *Options) {
		o.RunLimits = limits
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{RunLimits: DefaultRunLimits}
	for _, opt := range opts {
		opt(o)
	}

	if o.RunLimits.High < 1 {
		o.RunLimits.High = DefaultRunLimits.High
	}
	if o.RunLimits.Mid < 1 {
		o.RunLimits.Mid = DefaultRunLimits.Mid
	}
	if o.RunLimits.Low < 1 {
		o.RunLimits.Low = DefaultRunLimits.Low
	}
	return o
}
