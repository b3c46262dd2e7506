// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package essential

import (
	"math"
	"math/cmplx"
)

// Exact reports whether two integral values are identical.
// Integral arithmetic has no rounding error, so no tolerance applies.
func Exact[T Integral](a, b T) bool {
	return a == b
}

// ExactComplex reports whether two integral complex values are identical
// component by component.
func ExactComplex[T Integral](a, b Complex[T]) bool {
	return a == b
}

// Within reports whether a and b are essentially equal under the relative tolerance ε:
//
//	|a - b| ≤ 𝚖𝚒𝚗(|a|, |b|) × |ε|
//
// Scaling by the smaller magnitude makes the test stricter than the usual
// 𝚖𝚊𝚡 form ("approximately equal"). Consequences:
//   - a = b = 0 is equal for any finite ε.
//   - exactly one zero operand requires a = b, whatever ε is.
//   - a NaN operand is never equal to anything.
//   - the sign of ε is ignored.
//
// # Reference:
//
//   - D. E. Knuth, The Art of Computer Programming, Vol. 2, §4.2.2
func Within[F Floating](a, b, epsilon F) bool {
	return essentiallyEqual(abs(a-b), abs(a), abs(b), abs(epsilon))
}

// Equal is Within under the machine epsilon of F.
func Equal[F Floating](a, b F) bool {
	return EqualFrom(Machine{}, a, b)
}

// EqualFrom is Within under the default tolerance of F taken from src.
func EqualFrom[F Floating](src EpsilonSource, a, b F) bool {
	return Within(a, b, EpsilonOf[F](src))
}

// WithinComplex is Within with |·| taken as the complex modulus:
//
//	|a - b| ≤ 𝚖𝚒𝚗(|a|, |b|) × |ε|
//
// The test bounds the modulus of the difference vector, not each component
// independently. Moduli of complex64 values are rounded to float32.
func WithinComplex[C FloatingComplex](a, b, epsilon C) bool {
	d, ma, mb, me := modulus(a-b), modulus(a), modulus(b), modulus(epsilon)
	if singleComplex[C]() {
		return essentiallyEqual(float32(d), float32(ma), float32(mb), float32(me))
	}
	return essentiallyEqual(d, ma, mb, me)
}

// EqualComplex is WithinComplex under the machine epsilon of C.
func EqualComplex[C FloatingComplex](a, b C) bool {
	return EqualComplexFrom(Machine{}, a, b)
}

// EqualComplexFrom is WithinComplex under the default tolerance of C taken from src.
func EqualComplexFrom[C FloatingComplex](src EpsilonSource, a, b C) bool {
	return WithinComplex(a, b, ComplexEpsilonOf[C](src))
}

// essentiallyEqual expects non-negative magnitudes; a NaN in any of them yields false.
func essentiallyEqual[F Floating](diff, absA, absB, absEps F) bool {
	return diff <= min(absA, absB)*absEps
}

func abs[F Floating](x F) F {
	return F(math.Abs(float64(x)))
}

func modulus[C FloatingComplex](x C) float64 {
	return cmplx.Abs(complex128(x))
}
