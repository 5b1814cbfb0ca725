package approx

import (
	"math"
	"testing"
)

func TestCos_Accuracy(t *testing.T) {
	if err := maxAbsError(Cos[float64], math.Cos, -math.Pi, math.Pi); err > 1e-4 {
		t.Errorf("max abs error: got %g, want <= 1e-4", err)
	}
}

func TestSin_Accuracy(t *testing.T) {
	if err := maxAbsError(Sin[float64], math.Sin, -math.Pi, math.Pi); err > 2e-5 {
		t.Errorf("max abs error: got %g, want <= 2e-5", err)
	}
}

func TestTan_Accuracy(t *testing.T) {
	if err := maxRelError(Tan[float64], math.Tan, -1.55, 1.55); err > 1e-6 {
		t.Errorf("max rel error: got %g, want <= 1e-6", err)
	}
}

func TestTrig_ExactAtZero(t *testing.T) {
	if got := Cos(0.0); got != 1 {
		t.Errorf("Cos(0): got %g, want exactly 1", got)
	}

	if got := Sin(0.0); got != 0 {
		t.Errorf("Sin(0): got %g, want exactly 0", got)
	}

	if got := Tan(0.0); got != 0 {
		t.Errorf("Tan(0): got %g, want exactly 0", got)
	}
}

func TestTrig_Symmetry(t *testing.T) {
	for _, x := range sweep(0, math.Pi, 1001) {
		if Cos(-x) != Cos(x) {
			t.Fatalf("Cos(-%g) != Cos(%g)", x, x)
		}

		if Sin(-x) != -Sin(x) {
			t.Fatalf("Sin(-%g) != -Sin(%g)", x, x)
		}
	}

	for _, x := range sweep(0, 1.55, 1001) {
		if Tan(-x) != -Tan(x) {
			t.Fatalf("Tan(-%g) != -Tan(%g)", x, x)
		}
	}
}

func TestSin_KnownValue(t *testing.T) {
	if got := Sin(0.5); math.Abs(got-0.479425538604203) > 1e-4 {
		t.Errorf("Sin(0.5): got %g, want ~0.4794255", got)
	}
}

func TestCosInPlace_CardinalPoints(t *testing.T) {
	values := []float64{0, math.Pi / 2, math.Pi}
	CosInPlace(values)

	want := []float64{1, 0, -1}
	for i := range values {
		if math.Abs(values[i]-want[i]) > 1e-3 {
			t.Errorf("element %d: got %g, want %g", i, values[i], want[i])
		}
	}
}
