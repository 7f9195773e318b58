package dist

import (
	"math"
	"math/rand/v2"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestExponential_PDF(t *testing.T) {
	e := Exponential{Loc: 0, Scale: 2}

	// Density at the origin is 1/scale.
	if got := e.PDF(0); !almostEqual(got, 0.5, tolerance) {
		t.Errorf("PDF(0): got %g, want 0.5", got)
	}
	if got := e.PDF(2); !almostEqual(got, 0.5*math.Exp(-1), tolerance) {
		t.Errorf("PDF(2): got %g, want %g", got, 0.5*math.Exp(-1))
	}
	if got := e.PDF(-1); got != 0 {
		t.Errorf("PDF(-1): got %g, want 0", got)
	}
}

func TestExponential_ShiftedLocation(t *testing.T) {
	e := Exponential{Loc: 3, Scale: 1}

	if got := e.PDF(2.999); got != 0 {
		t.Errorf("PDF below Loc: got %g, want 0", got)
	}
	if got := e.PDF(3); !almostEqual(got, 1, tolerance) {
		t.Errorf("PDF at Loc: got %g, want 1", got)
	}
	if got := e.LogPDF(2); !math.IsInf(got, -1) {
		t.Errorf("LogPDF below Loc: got %g, want -Inf", got)
	}
	if got := e.LogPDF(4); !almostEqual(got, -1, tolerance) {
		t.Errorf("LogPDF(4): got %g, want -1", got)
	}
}

func TestExponential_NaNPropagation(t *testing.T) {
	e := Exponential{Loc: 0, Scale: math.NaN()}
	if got := e.PDF(1); !math.IsNaN(got) {
		t.Errorf("PDF with NaN scale: got %g, want NaN", got)
	}

	e = Exponential{Loc: 0, Scale: 1}
	if got := e.PDF(math.NaN()); !math.IsNaN(got) {
		t.Errorf("PDF(NaN): got %g, want NaN", got)
	}
}

func TestNormal_PDF(t *testing.T) {
	n := Normal{Mu: 0, Sigma: 1}

	invSqrt2Pi := 1 / math.Sqrt(2*math.Pi)
	if got := n.PDF(0); !almostEqual(got, invSqrt2Pi, tolerance) {
		t.Errorf("PDF(0): got %g, want %g", got, invSqrt2Pi)
	}
	if got := n.PDF(1); !almostEqual(got, invSqrt2Pi*math.Exp(-0.5), tolerance) {
		t.Errorf("PDF(1): got %g, want %g", got, invSqrt2Pi*math.Exp(-0.5))
	}

	// Symmetry about the mean.
	n = Normal{Mu: 5, Sigma: 2}
	if a, b := n.PDF(3), n.PDF(7); !almostEqual(a, b, tolerance) {
		t.Errorf("symmetry: PDF(3)=%g, PDF(7)=%g", a, b)
	}
}

func TestNormal_LogPDF(t *testing.T) {
	n := Normal{Mu: 1, Sigma: 3}

	want := math.Log(n.PDF(2.5))
	if got := n.LogPDF(2.5); !almostEqual(got, want, 1e-10) {
		t.Errorf("LogPDF(2.5): got %g, want %g", got, want)
	}
}

func TestNormal_NaNPropagation(t *testing.T) {
	n := Normal{Mu: 0, Sigma: math.NaN()}
	if got := n.PDF(1); !math.IsNaN(got) {
		t.Errorf("PDF with NaN sigma: got %g, want NaN", got)
	}
	if got := n.LogPDF(1); !math.IsNaN(got) {
		t.Errorf("LogPDF with NaN sigma: got %g, want NaN", got)
	}
}

func TestRand_Deterministic(t *testing.T) {
	a := Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(1, 2)}
	b := Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(1, 2)}

	for i := 0; i < 10; i++ {
		if x, y := a.Rand(), b.Rand(); x != y {
			t.Fatalf("draw %d: sources with equal seeds diverged: %g vs %g", i, x, y)
		}
	}
}

func TestRand_ExponentialAboveLoc(t *testing.T) {
	e := Exponential{Loc: 10, Scale: 0.5, Src: rand.NewPCG(3, 4)}

	for i := 0; i < 100; i++ {
		if x := e.Rand(); x < 10 {
			t.Fatalf("draw %d: sample %g below location 10", i, x)
		}
	}
}
