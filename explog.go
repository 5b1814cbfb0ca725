package approx

// Exp returns a Padé approximation of e**x.
//
// Accuracy holds for inputs in [-6, 4] and is best within [-3, 2];
// toward the range ends the relative error grows to several percent.
// Exp(0) is exactly 1.
func Exp[T Float](x T) T {
	numerator := 1680 + x*(840+x*(180+x*(20+x)))
	denominator := 1680 + x*(-840+x*(180+x*(-20+x)))

	return numerator / denominator
}

// ExpInPlace replaces every element of values with Exp of itself.
func ExpInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Exp(v)
	}
}

// Log1p returns a Padé approximation of log(1+x).
//
// Accuracy holds for inputs in [-0.8, 5]. Log1p(0) is exactly 0.
func Log1p[T Float](x T) T {
	numerator := x * (7560 + x*(15120+x*(9870+x*(2310+x*137))))
	denominator := 7560 + x*(18900+x*(16800+x*(6300+x*(900+30*x))))

	return numerator / denominator
}

// Log1pInPlace replaces every element of values with Log1p of itself.
func Log1pInPlace[T Float](values []T) {
	for i, v := range values {
		values[i] = Log1p(v)
	}
}
