// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package essential

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integral is the domain of types without rounding error.
type Integral interface {
	constraints.Integer
}

// Floating is the domain of real types compared under a relative tolerance.
type Floating interface {
	constraints.Float
}

// FloatingComplex is the domain of complex types compared by modulus.
type FloatingComplex interface {
	constraints.Complex
}

// Complex is a complex value with integral components.
type Complex[T Integral] struct {
	Real, Imag T
}

// Cmplx returns re + im𝑖.
func Cmplx[T Integral](re, im T) Complex[T] {
	return Complex[T]{Real: re, Imag: im}
}

// single reports whether F has float32 precision.
func single[F Floating]() bool {
	var f F
	return unsafe.Sizeof(f) == 4
}

// singleComplex reports whether C has complex64 precision.
func singleComplex[C FloatingComplex]() bool {
	var c C
	return unsafe.Sizeof(c) == 8
}
