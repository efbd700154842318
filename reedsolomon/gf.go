// Package reedsolomon implements the Reed-Solomon error correction
// encoding used by Data Matrix ECC 200 symbols.
package reedsolomon

import "fmt"

// Field represents GF(256) under a given primitive polynomial.
type Field struct {
	expTable      [256]int
	logTable      [256]int
	primitive     int
	generatorBase int
}

// DataMatrixField256 is GF(256) with primitive polynomial
// x^8 + x^5 + x^3 + x^2 + 1 (0x12D) and generator base 1, as required
// by ISO/IEC 16022 for ECC 200 error correction.
var DataMatrixField256 = NewField(0x12D, 1)

// NewField creates a GF(256) using the given primitive polynomial.
// generatorBase is the exponent of the first root of the generator
// polynomial (1 for Data Matrix).
func NewField(primitive, generatorBase int) *Field {
	f := &Field{
		primitive:     primitive,
		generatorBase: generatorBase,
	}
	x := 1
	for i := 0; i < 256; i++ {
		f.expTable[i] = x
		x *= 2
		if x >= 256 {
			x ^= primitive
			x &= 255
		}
	}
	for i := 0; i < 255; i++ {
		f.logTable[f.expTable[i]] = i
	}
	return f
}

// Exp returns 2^a in this field.
func (f *Field) Exp(a int) int {
	return f.expTable[a%255]
}

// Log returns log2(a) in this field.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return f.logTable[a]
}

// Multiply returns a * b in this field.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.expTable[(f.logTable[a]+f.logTable[b])%255]
}

// GeneratorBase returns the exponent of the first generator root.
func (f *Field) GeneratorBase() int { return f.generatorBase }

// String returns a string representation.
func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x,256)", f.primitive)
}
