// Package dist provides the location/scale density primitives used by the
// mixture estimator: a shifted exponential distribution and a normal
// (Gaussian) distribution, each exposing the density, log-density, and a
// sampler.
//
// Both types are plain values; the zero value is not useful, construct them
// with the parameters you need. Density evaluation delegates to
// gonum's stat/distuv and propagates non-finite inputs: a NaN parameter or
// argument yields a NaN density. Callers that need to detect degenerate
// parameterizations check the result, not the inputs.
package dist

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential is an exponential distribution with its support starting at
// Loc and scale (mean above Loc) Scale.
//
// The density is Scale⁻¹·exp(-(x-Loc)/Scale) for x ≥ Loc and 0 below Loc.
type Exponential struct {
	Loc   float64
	Scale float64
	Src   rand.Source
}

// PDF returns the probability density at x.
func (e Exponential) PDF(x float64) float64 {
	return distuv.Exponential{Rate: 1 / e.Scale}.Prob(x - e.Loc)
}

// LogPDF returns the natural log of the density at x. Below Loc this is
// negative infinity.
func (e Exponential) LogPDF(x float64) float64 {
	return distuv.Exponential{Rate: 1 / e.Scale}.LogProb(x - e.Loc)
}

// Rand draws one sample from the distribution.
func (e Exponential) Rand() float64 {
	return e.Loc + distuv.Exponential{Rate: 1 / e.Scale, Src: e.Src}.Rand()
}

// Normal is a normal distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
	Src   rand.Source
}

// PDF returns the probability density at x.
func (n Normal) PDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.Prob(x)
}

// LogPDF returns the natural log of the density at x.
func (n Normal) LogPDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.LogProb(x)
}

// Rand draws one sample from the distribution.
func (n Normal) Rand() float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: n.Src}.Rand()
}
