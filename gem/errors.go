package gem

import "errors"

var (
	// ErrEmptySample is returned by New when the sample contains no points.
	ErrEmptySample = errors.New("empty sample")

	// ErrNonPositiveIterations is returned by New when the iteration cap is
	// less than 1.
	ErrNonPositiveIterations = errors.New("maximum iterations must be at least 1")

	// ErrNonPositiveTolerance is returned by New when the convergence
	// tolerance is not strictly positive.
	ErrNonPositiveTolerance = errors.New("convergence tolerance must be positive")

	// ErrInvalidParameters is returned by New when the initial parameters
	// are out of range: beta and sigma must be strictly positive, the
	// proportion must lie in [0, 1], and all fields must be finite.
	ErrInvalidParameters = errors.New("initial parameters out of range")

	// ErrDegenerateWeights is returned by Fit when an update step would
	// divide by a zero responsibility mass or produces a non-finite
	// parameter, typically because one component has collapsed.
	ErrDegenerateWeights = errors.New("degenerate responsibility weights")
)
