// Package semacode encodes messages into Data Matrix (ECC 200)
// symbols. It is typically used to create semacodes, barcodes that
// contain URLs. The package produces module grids, not images: the
// result can be rendered to a terminal, HTML, SVG, or stored for later
// use.
package semacode

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/semacode/semacode/bitutil"
	"github.com/semacode/semacode/encoder"
)

// Encoder holds the result of the most recent successful encode: the
// module grid, the chosen symbol size and the derived counters.
//
// An Encoder is not safe for concurrent use: Encode replaces the held
// state, and the read accessors report only the most recently completed
// encode. Callers that share one Encoder across goroutines must
// serialize access externally. Distinct Encoder instances are fully
// independent.
type Encoder struct {
	state *encoderState
}

// encoderState is one encode result. It is built completely before
// being swapped into the Encoder, so a failed re-encode never disturbs
// the previous result.
type encoderState struct {
	matrix    *bitutil.BitMatrix
	info      *encoder.SymbolInfo
	rawLength int
	schemes   string
}

// New encodes message and returns an Encoder holding the result.
//
// The message is used byte for byte; callers that start from non-string
// data perform their own conversion first.
func New(message string) (*Encoder, error) {
	e := &Encoder{}
	if _, err := e.Encode(message); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode re-encodes the Encoder with a new message, replacing the held
// state, and returns the new grid. On failure the previously held
// result is left untouched.
//
// Errors: ErrInvalidInput for an empty message, ErrMessageTooLong when
// no symbol size can hold the message.
func (e *Encoder) Encode(message string) ([][]bool, error) {
	if len(message) == 0 {
		return nil, ErrInvalidInput
	}

	sym, err := encoder.Encode([]byte(message))
	if err != nil {
		if errors.Is(err, encoder.ErrNoSuitableSymbol) {
			return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLong, len(message))
		}
		return nil, err
	}

	e.state = &encoderState{
		matrix:    sym.Matrix,
		info:      sym.Info,
		rawLength: sym.RawLength,
		schemes:   string(sym.Schemes),
	}

	Logger().Debug("encoded message",
		zap.Int("messageBytes", len(message)),
		zap.Int("rawCodewords", sym.RawLength),
		zap.Int("dataCapacity", sym.Info.DataCapacity),
		zap.Int("eccCodewords", sym.Info.ErrorCodewords),
		zap.Int("width", sym.Info.MatrixWidth),
		zap.Int("height", sym.Info.MatrixHeight),
	)

	return e.state.matrix.ToBoolMatrix(), nil
}

// Width returns the symbol width in modules.
func (e *Encoder) Width() int {
	if e.state == nil {
		return 0
	}
	return e.state.matrix.Width()
}

// Height returns the symbol height in modules.
func (e *Encoder) Height() int {
	if e.state == nil {
		return 0
	}
	return e.state.matrix.Height()
}

// Length returns the total module count, width times height.
func (e *Encoder) Length() int {
	return e.Width() * e.Height()
}

// RawEncodedLength returns the number of codewords needed to represent
// the message, before padding and error correction.
func (e *Encoder) RawEncodedLength() int {
	if e.state == nil {
		return 0
	}
	return e.state.rawLength
}

// SymbolCapacity returns the data codeword capacity of the chosen
// symbol size. The difference to RawEncodedLength is room left for
// packing extra information into the same symbol size.
func (e *Encoder) SymbolCapacity() int {
	if e.state == nil {
		return 0
	}
	return e.state.info.DataCapacity
}

// ECCBytes returns the number of codewords devoted to error correction.
func (e *Encoder) ECCBytes() int {
	if e.state == nil {
		return 0
	}
	return e.state.info.ErrorCodewords
}

// Encoding returns the encoding scheme letters, one per message byte:
// 'A' ASCII, 'C' C40, 'T' Text, 'X' X12, 'E' EDIFACT, 'B' Base 256.
func (e *Encoder) Encoding() string {
	if e.state == nil {
		return ""
	}
	return e.state.schemes
}

// Grid returns the symbol as a boolean matrix. Row 0 is the top row;
// true is a dark module.
func (e *Encoder) Grid() [][]bool {
	if e.state == nil {
		return nil
	}
	return e.state.matrix.ToBoolMatrix()
}

// Matrix returns a copy of the symbol's module grid.
func (e *Encoder) Matrix() *bitutil.BitMatrix {
	if e.state == nil {
		return nil
	}
	return e.state.matrix.Clone()
}

// String returns the symbol as rows of '1' (dark) and '0' (light)
// characters, top row first. Every row, including the last, is
// terminated by a comma; this matches the historical semacode string
// form byte for byte.
func (e *Encoder) String() string {
	if e.state == nil {
		return ""
	}
	m := e.state.matrix
	var sb strings.Builder
	sb.Grow(m.Height() * (m.Width() + 1))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte(',')
	}
	return sb.String()
}
