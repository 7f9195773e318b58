package gem

// Config defines configuration for an Estimator.
type Config struct {
	// ExponentialLocation is the fixed lower bound of the exponential
	// component's support. It is not estimated.
	ExponentialLocation float64

	// MaxIterations bounds the number of EM steps a single Fit performs.
	MaxIterations int

	// Tolerance is the parameter-distance threshold below which fitting
	// stops.
	Tolerance float64

	// Initial holds the parameter values fitting starts from.
	Initial Parameters
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: location 0, at most 100
// iterations, tolerance 0.001, and DefaultParameters as the start point.
func DefaultConfig() Config {
	return Config{
		ExponentialLocation: 0,
		MaxIterations:       100,
		Tolerance:           0.001,
		Initial:             DefaultParameters(),
	}
}

// WithExponentialLocation fixes the exponential component's location
// offset. Note that the scale update averages raw observations without
// subtracting this offset, so fits with a nonzero location bias beta
// upward by the offset.
func WithExponentialLocation(loc float64) Option {
	return func(cfg *Config) {
		cfg.ExponentialLocation = loc
	}
}

// WithMaxIterations sets the EM iteration cap.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		cfg.MaxIterations = n
	}
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		cfg.Tolerance = tol
	}
}

// WithInitialParameters sets the parameter values fitting starts from.
func WithInitialParameters(p Parameters) Option {
	return func(cfg *Config) {
		cfg.Initial = p
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
