package gem

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Parameters holds the four scalars describing a gaussian-exponential
// mixture: the exponential scale (and mean) Beta, the gaussian mean Mu, the
// gaussian standard deviation Sigma, and the mixing Proportion, which is
// the probability that an observation belongs to the gaussian component.
//
// Parameters is a plain value; assignment is a deep copy, so committed and
// candidate states never share mutable storage.
type Parameters struct {
	Beta       float64
	Mu         float64
	Sigma      float64
	Proportion float64
}

// DefaultParameters returns the standard starting point for fitting: a unit
// exponential, a wide zero-centered gaussian, and an even split.
func DefaultParameters() Parameters {
	return Parameters{Beta: 1, Mu: 0, Sigma: 100, Proportion: 0.5}
}

// String renders the parameters in a fixed five-decimal format.
func (p Parameters) String() string {
	return fmt.Sprintf("beta: %.5f | mu: %.5f | sigma: %.5f | proportion: %.5f",
		p.Beta, p.Mu, p.Sigma, p.Proportion)
}

// MaxDifference returns the largest absolute difference across the four
// aligned fields. It is symmetric and zero exactly when the two values are
// equal, and serves as the convergence metric for fitting.
func (p Parameters) MaxDifference(other Parameters) float64 {
	diff := [4]float64{
		p.Beta - other.Beta,
		p.Mu - other.Mu,
		p.Sigma - other.Sigma,
		p.Proportion - other.Proportion,
	}

	return vecmath.MaxAbs(diff[:])
}
