// Package approx provides fast rational (Padé approximant) substitutes
// for common transcendental functions: sine, cosine, tangent, their
// hyperbolic counterparts, the exponential, and log(1+x).
//
// Each function is a ratio of two small fixed-coefficient polynomials,
// evaluated with nested multiply-adds. Compared to the math package
// this trades accuracy and input range for a short, branch-free run of
// arithmetic with no allocation, which is what per-sample audio code
// wants in its hot loops.
//
// Key properties:
//
//   - Every function is stateless and safe for concurrent use
//   - All functions are generic over float32 and float64
//   - Accuracy holds only on the documented input range of each
//     function; outside it the error grows without bound, silently
//   - Inputs are never validated, wrapped, or clamped
//   - NaN and infinity propagate through the arithmetic unspecified
//
// # Usage
//
// Scalar form, one value at a time:
//
//	y := approx.Tanh(drive * sample)
//
// Block form, transforming a buffer in place:
//
//	approx.TanhInPlace(samples)
//
// The block forms apply the scalar function to every element
// independently and never retain a reference to the slice.
package approx
