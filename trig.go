package approx

// Cos returns a Padé approximation of cos(x).
//
// Accuracy holds for inputs in [-π, π]. The input is not wrapped into
// that range; far outside it the rational form diverges from cosine.
func Cos[T Float](x T) T {
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
	numerator := -(-a + x2*(b+x2*(-c+d*x2)))
	denominator := a + x2*(e+x2*(f+x2*g))

	return numerator / denominator
}

// CosInPlace replaces every element of values with Cos of itself.
func CosInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Cos(v)
	}
}

// Sin returns a Padé approximation of sin(x).
//
// Accuracy holds for inputs in [-π, π]. The input is not wrapped into
// that range.
func Sin[T Float](x T) T {
	const (
		a = 11511339840
		b = 1640635920
		c = 52785432
		d = 479249
		e = 277920720
		f = 3177720
		g = 18361
	)

	x2 := x * x
	numerator := -x * (-a + x2*(b+x2*(-c+x2*d)))
	denominator := a + x2*(e+x2*(f+x2*g))

	return numerator / denominator
}

// SinInPlace replaces every element of values with Sin of itself.
func SinInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Sin(v)
	}
}

// Tan returns a Padé approximation of tan(x).
//
// Accuracy holds for inputs in (-π/2, π/2). The rational form has no
// pole exactly at ±π/2, so values near the asymptote fall short of the
// true tangent.
func Tan[T Float](x T) T {
	x2 := x * x
	numerator := x * (-135135 + x2*(17325+x2*(-378+x2)))
	denominator := -135135 + x2*(62370+x2*(-3150+28*x2))

	return numerator / denominator
}

// TanInPlace replaces every element of values with Tan of itself.
func TanInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Tan(v)
	}
}
