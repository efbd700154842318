package reedsolomon

// Encoder computes Reed-Solomon parity codewords. Generator polynomials
// are built incrementally and cached, so one Encoder can serve blocks of
// different parity sizes without rebuilding.
type Encoder struct {
	field *Field
	// cachedGenerators[d] holds the monic generator polynomial of degree d,
	// coefficients ordered from highest degree to lowest.
	cachedGenerators [][]int
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *Field) *Encoder {
	return &Encoder{
		field:            field,
		cachedGenerators: [][]int{{1}},
	}
}

// generator returns the generator polynomial with the given degree,
// prod (x - 2^(base+i)) for i in [0, degree).
func (e *Encoder) generator(degree int) []int {
	for d := len(e.cachedGenerators); d <= degree; d++ {
		last := e.cachedGenerators[d-1]
		root := e.field.Exp(d - 1 + e.field.generatorBase)
		// Multiply the previous generator by (x - root). Addition and
		// subtraction are both XOR in GF(2^8).
		next := make([]int, d+1)
		copy(next, last)
		for i, c := range last {
			next[i+1] ^= e.field.Multiply(c, root)
		}
		e.cachedGenerators = append(e.cachedGenerators, next)
	}
	return e.cachedGenerators[degree]
}

// Encode returns the ecBytes parity codewords for data, the remainder of
// data(x) * x^ecBytes divided by the generator polynomial of degree ecBytes.
func (e *Encoder) Encode(data []byte, ecBytes int) []byte {
	if ecBytes == 0 {
		panic("reedsolomon: no error correction bytes")
	}
	if len(data) == 0 {
		panic("reedsolomon: no data bytes provided")
	}
	gen := e.generator(ecBytes)

	// Polynomial long division, one data codeword at a time. remainder[0]
	// tracks the highest-degree coefficient.
	remainder := make([]int, ecBytes)
	for _, b := range data {
		factor := int(b) ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[ecBytes-1] = 0
		if factor != 0 {
			for i := 0; i < ecBytes; i++ {
				remainder[i] ^= e.field.Multiply(gen[i+1], factor)
			}
		}
	}

	ec := make([]byte, ecBytes)
	for i, c := range remainder {
		ec[i] = byte(c)
	}
	return ec
}
