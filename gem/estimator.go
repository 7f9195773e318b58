package gem

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mixture/dist"
)

// Estimator fits a gaussian-exponential mixture to a scalar sample by EM.
//
// The estimator owns its state exclusively: the sample is copied at
// construction and never mutated, and the committed/candidate parameter
// pair is only ever observed between steps. Methods must not be called
// concurrently.
type Estimator struct {
	data []float64

	expLoc        float64
	maxIterations int
	tolerance     float64

	// cur is the committed state from the previous step; next is the
	// candidate the current step writes into. cur always lags next by one
	// step while fitting and equals it after Fit returns.
	cur  Parameters
	next Parameters

	// Live densities, refreshed from the candidate parameters at the end
	// of every step so they never lag behind next.
	expon dist.Exponential
	norm  dist.Normal

	resp    []float64 // per-point gaussian responsibility
	scratch []float64 // complement weights / elementwise products

	iterations int
}

// New creates an Estimator over the given sample. The sample is copied; it
// must be non-empty. Options adjust the exponential location, iteration
// cap, tolerance, and initial parameters.
func New(data []float64, opts ...Option) (*Estimator, error) {
	cfg := ApplyOptions(opts...)

	if len(data) == 0 {
		return nil, ErrEmptySample
	}

	if cfg.MaxIterations < 1 {
		return nil, ErrNonPositiveIterations
	}

	if !(cfg.Tolerance > 0) {
		return nil, ErrNonPositiveTolerance
	}

	if err := validateInitial(cfg.Initial); err != nil {
		return nil, err
	}

	e := &Estimator{
		data:          append([]float64(nil), data...),
		expLoc:        cfg.ExponentialLocation,
		maxIterations: cfg.MaxIterations,
		tolerance:     cfg.Tolerance,
		cur:           cfg.Initial,
		next:          cfg.Initial,
		resp:          make([]float64, len(data)),
		scratch:       make([]float64, len(data)),
	}

	e.refreshDensities(e.next)

	return e, nil
}

func validateInitial(p Parameters) error {
	for _, v := range []float64{p.Beta, p.Mu, p.Sigma, p.Proportion} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidParameters
		}
	}

	if p.Beta <= 0 || p.Sigma <= 0 {
		return ErrInvalidParameters
	}

	if p.Proportion < 0 || p.Proportion > 1 {
		return ErrInvalidParameters
	}

	return nil
}

// Parameters returns the currently committed parameter values. Before Fit
// these are the initial values; after Fit, the fitted ones.
func (e *Estimator) Parameters() Parameters {
	return e.cur
}

// Iterations returns the number of EM steps the most recent Fit performed.
func (e *Estimator) Iterations() int {
	return e.iterations
}

// DensityAt evaluates the mixture density at x under the committed
// parameters: (1-proportion)·exponential + proportion·gaussian. It is valid
// before, during (between Fit calls), and after fitting.
func (e *Estimator) DensityAt(x float64) float64 {
	p := e.cur.Proportion

	return (1-p)*e.expon.PDF(x) + p*e.norm.PDF(x)
}

// Fit runs EM steps until the parameter change between consecutive steps
// falls below the tolerance or the iteration cap is reached. Reaching the
// cap is not an error. Fit resumes from the estimator's current parameters,
// so repeated calls refine rather than restart.
//
// Fit fails with ErrDegenerateWeights when a step's responsibility mass for
// either component vanishes or an update produces a non-finite parameter;
// the estimator then holds the last committed state.
func (e *Estimator) Fit() error {
	if err := e.step(); err != nil {
		return err
	}

	iters := 1
	for iters < e.maxIterations && e.cur.MaxDifference(e.next) > e.tolerance {
		if err := e.step(); err != nil {
			return err
		}

		iters++
	}

	// Final commit so the committed state matches the last candidate.
	e.cur = e.next
	e.iterations = iters

	return nil
}

// responsibility returns the posterior probability that x belongs to the
// gaussian component under the committed parameters and the live densities.
// A NaN exponential density assigns the point fully to the gaussian; a NaN
// gaussian density fully to the exponential.
func (e *Estimator) responsibility(x float64) float64 {
	gaussian := e.norm.PDF(x)
	exponential := e.expon.PDF(x)

	if math.IsNaN(exponential) {
		return 1
	}

	if math.IsNaN(gaussian) {
		return 0
	}

	if e.cur.Proportion == 0 {
		return 0
	}

	pGaussian := gaussian * e.cur.Proportion
	pExponential := exponential * (1 - e.cur.Proportion)

	return pGaussian / (pGaussian + pExponential)
}

// step performs one EM step: commit the previous candidate, re-estimate
// beta, mu, and sigma from the responsibilities at step entry, refresh the
// densities, then re-estimate the proportion from the refreshed densities.
func (e *Estimator) step() error {
	e.cur = e.next

	for i, x := range e.data {
		e.resp[i] = e.responsibility(x)
	}

	for i, r := range e.resp {
		e.scratch[i] = 1 - r
	}

	gaussianMass := vecmath.Sum(e.resp)
	exponentialMass := vecmath.Sum(e.scratch)

	if gaussianMass == 0 || exponentialMass == 0 {
		return ErrDegenerateWeights
	}

	// Weighted means of the raw observations. The exponential update does
	// not subtract the location offset, matching the documented behavior.
	e.next.Beta = vecmath.DotProduct(e.scratch, e.data) / exponentialMass
	e.next.Mu = vecmath.DotProduct(e.resp, e.data) / gaussianMass

	// Weighted variance about the freshly updated mean.
	var sumSq float64
	for i, x := range e.data {
		d := x - e.next.Mu
		sumSq += e.resp[i] * d * d
	}
	e.next.Sigma = math.Sqrt(sumSq / gaussianMass)

	if !finite(e.next.Beta) || !finite(e.next.Mu) || !finite(e.next.Sigma) {
		return ErrDegenerateWeights
	}

	e.refreshDensities(e.next)

	// Hard reassignment fraction: the share of points whose gaussian
	// log-density beats the exponential one under the refreshed densities,
	// with non-finite log-densities coerced to zero before comparing. This
	// is not the soft posterior mean of textbook EM.
	var gaussianCount float64
	for _, x := range e.data {
		if finiteOrZero(e.norm.LogPDF(x)) > finiteOrZero(e.expon.LogPDF(x)) {
			gaussianCount++
		}
	}
	e.next.Proportion = gaussianCount / float64(len(e.data))

	return nil
}

// refreshDensities rebuilds the live component densities from p, leaving
// the exponential location fixed.
func (e *Estimator) refreshDensities(p Parameters) {
	e.expon = dist.Exponential{Loc: e.expLoc, Scale: p.Beta}
	e.norm = dist.Normal{Mu: p.Mu, Sigma: p.Sigma}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
