package approx

// Cosh returns a Padé approximation of cosh(x).
//
// Accuracy holds for inputs in [-5, 5]. The coefficient magnitudes are
// the same as those of Cos; only the signs differ, since
// cosh(x) = cos(ix).
func Cosh[T Float](x T) T {
	const (
		a = 39251520
		b = 18471600
		c = 1075032
		d = 14615
		e = 1154160
		f = 16632
		g = 127
	)

	x2 := x * x
	numerator := -(a + x2*(b+x2*(c+d*x2)))
	denominator := -a + x2*(e+x2*(-f+g*x2))

	return numerator / denominator
}

// CoshInPlace replaces every element of values with Cosh of itself.
func CoshInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Cosh(v)
	}
}

// Sinh returns a Padé approximation of sinh(x).
//
// Accuracy holds for inputs in [-5, 5].
func Sinh[T Float](x T) T {
	x2 := x * x
	numerator := -x * (11511339840 + x2*(1640635920+x2*(52785432+x2*479249)))
	denominator := -11511339840 + x2*(277920720+x2*(-3177720+x2*18361))

	return numerator / denominator
}

// SinhInPlace replaces every element of values with Sinh of itself.
func SinhInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Sinh(v)
	}
}

// Tanh returns a Padé approximation of tanh(x).
//
// Accuracy holds for inputs in [-5, 5], with a worst-case absolute
// error around 1e-4. The approximation slightly overshoots ±1 near the
// range ends, which matters if the output feeds something that assumes
// a hard [-1, 1] bound.
func Tanh[T Float](x T) T {
	x2 := x * x
	numerator := x * (135135 + x2*(17325+x2*(378+x2)))
	denominator := 135135 + x2*(62370+x2*(3150+28*x2))

	return numerator / denominator
}

// TanhInPlace replaces every element of values with Tanh of itself.
// This is the usual form for waveshaping a whole sample block.
func TanhInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Tanh(v)
	}
}
