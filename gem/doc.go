// Package gem fits a two-component gaussian-exponential mixture density to
// a one-dimensional sample using the Expectation-Maximization algorithm.
//
// The model assumes each observation was drawn either from a shifted
// exponential distribution (scale beta, fixed location) or from a normal
// distribution (mean mu, standard deviation sigma), with an unknown mixing
// proportion giving the probability of the normal component. This suits
// unsupervised decomposition of scalar data blended from a one-sided
// heavy-tailed process and a symmetric one, such as latency samples mixing
// a fast-path bulk with a slow symmetric cluster.
//
// # Usage
//
// Construct an estimator over the sample, fit, and query the result:
//
//	est, err := gem.New(samples,
//	    gem.WithMaxIterations(200),
//	    gem.WithTolerance(1e-4),
//	)
//	if err != nil {
//	    // handle
//	}
//	if err := est.Fit(); err != nil {
//	    // degenerate sample or initial parameters
//	}
//	fmt.Println(est.Parameters())
//	y := est.DensityAt(3.2)
//
// Fit resumes from whatever parameters the estimator currently holds, so a
// second call refines an already-fitted model rather than restarting.
//
// Two details of the update rules are deliberate and documented at their
// sites: the mixing proportion is re-estimated as a hard reassignment
// fraction from a log-density comparison rather than the soft mean of the
// posterior responsibilities, and the exponential scale update averages raw
// observations without subtracting the location offset, which is exact only
// for location zero.
package gem
