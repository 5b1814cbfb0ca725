package approx

import (
	"math"
	"testing"
)

func TestExp_Accuracy(t *testing.T) {
	// The approximation is tightest in the middle of its range; the
	// stated [-6, 4] ends degrade to percent-level relative error.
	if err := maxRelError(Exp[float64], math.Exp, -3, 2); err > 2e-3 {
		t.Errorf("max rel error over [-3, 2]: got %g, want <= 2e-3", err)
	}

	if err := maxRelError(Exp[float64], math.Exp, -5, 3); err > 0.2 {
		t.Errorf("max rel error over [-5, 3]: got %g, want <= 0.2", err)
	}
}

func TestExp_ExactAtZero(t *testing.T) {
	if got := Exp(0.0); got != 1 {
		t.Errorf("Exp(0): got %g, want exactly 1", got)
	}
}

func TestExp_KnownValue(t *testing.T) {
	if got := Exp(1.0); math.Abs(got-math.E) > 1e-4 {
		t.Errorf("Exp(1): got %g, want ~%g", got, math.E)
	}
}

func TestExp_Monotonic(t *testing.T) {
	grid := sweep(-6, 4, 10001)

	prev := Exp(grid[0])
	for _, x := range grid[1:] {
		y := Exp(x)
		if y <= prev {
			t.Fatalf("not strictly increasing at %g: %g <= %g", x, y, prev)
		}

		prev = y
	}
}

func TestLog1p_Accuracy(t *testing.T) {
	if err := maxAbsError(Log1p[float64], math.Log1p, -0.8, 5); err > 5e-4 {
		t.Errorf("max abs error: got %g, want <= 5e-4", err)
	}
}

func TestLog1p_ExactAtZero(t *testing.T) {
	if got := Log1p(0.0); got != 0 {
		t.Errorf("Log1p(0): got %g, want exactly 0", got)
	}
}

func TestLog1p_KnownValue(t *testing.T) {
	if got := Log1p(1.0); math.Abs(got-math.Ln2) > 1e-3 {
		t.Errorf("Log1p(1): got %g, want ~%g", got, math.Ln2)
	}
}
