// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package essential

import "math"

var (
	eps32 = math.Nextafter32(1, 2) - 1 // 2⁻²³
	eps64 = math.Nextafter(1, 2) - 1   // 2⁻⁵²
)

// EpsilonSource supplies the default tolerance of each floating type.
// Implementations must return constants and be safe for concurrent use.
type EpsilonSource interface {
	Float32() float32
	Float64() float64
	Complex64() complex64
	Complex128() complex128
}

// Machine is the EpsilonSource of machine epsilon, the gap between 1 and
// the next representable value. Complex tolerances carry it in the real part.
type Machine struct{}

func (Machine) Float32() float32       { return eps32 }
func (Machine) Float64() float64       { return eps64 }
func (Machine) Complex64() complex64   { return complex(eps32, 0) }
func (Machine) Complex128() complex128 { return complex(eps64, 0) }

// Tolerances is an EpsilonSource with an explicit tolerance per type.
type Tolerances struct {
	F32  float32
	F64  float64
	C64  complex64
	C128 complex128
}

func (t Tolerances) Float32() float32       { return t.F32 }
func (t Tolerances) Float64() float64       { return t.F64 }
func (t Tolerances) Complex64() complex64   { return t.C64 }
func (t Tolerances) Complex128() complex128 { return t.C128 }

// EpsilonOf looks up the default tolerance of F in src.
func EpsilonOf[F Floating](src EpsilonSource) F {
	if single[F]() {
		return F(src.Float32())
	}
	return F(src.Float64())
}

// ComplexEpsilonOf looks up the default tolerance of C in src.
func ComplexEpsilonOf[C FloatingComplex](src EpsilonSource) C {
	if singleComplex[C]() {
		return C(src.Complex64())
	}
	return C(src.Complex128())
}
