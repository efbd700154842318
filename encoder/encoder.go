// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix (ECC 200) symbol encoding.
package encoder

import (
	"errors"
	"fmt"

	"github.com/semacode/semacode/bitutil"
)

// Symbol is the result of encoding one message.
type Symbol struct {
	// Matrix is the final module grid including finder and timing
	// patterns. Row 0 is the top row; a set bit is a dark module.
	Matrix *bitutil.BitMatrix
	// Info is the symbol size the message was encoded into.
	Info *SymbolInfo
	// RawLength is the number of codewords needed to represent the
	// message, before padding and error correction.
	RawLength int
	// Schemes holds one encoding scheme letter per message byte.
	Schemes []byte
}

// Encode encodes the message into the smallest Data Matrix ECC 200
// symbol that fits it, square or rectangular.
func Encode(msg []byte) (*Symbol, error) {
	return EncodeWithShape(msg, ShapeHintForceNone)
}

// EncodeWithShape encodes the message into a Data Matrix ECC 200 symbol
// with the given shape constraint.
func EncodeWithShape(msg []byte, shape SymbolShapeHint) (*Symbol, error) {
	if len(msg) == 0 {
		return nil, errors.New("datamatrix: empty message")
	}

	// Step 1: high-level encode the message into data codewords.
	encoded, schemes, err := EncodeHighLevel(msg)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: high-level encoding failed: %w", err)
	}

	// Step 2: select the smallest symbol size that fits.
	info, err := Lookup(len(encoded), shape)
	if err != nil {
		return nil, err
	}

	// Step 3: pad to the symbol's data capacity.
	codewords := PadCodewords(encoded, info.DataCapacity)

	// Step 4: append Reed-Solomon error correction.
	full, err := EncodeECC200(codewords, info)
	if err != nil {
		return nil, fmt.Errorf("datamatrix: error correction failed: %w", err)
	}

	// Step 5: place the codeword bits into the mapping matrix.
	placement := NewPlacement(full, info.MappingMatrixColumns(), info.MappingMatrixRows())
	placement.Place()

	// Step 6: assemble the symbol matrix around the mapping matrix.
	return &Symbol{
		Matrix:    buildSymbolMatrix(placement, info),
		Info:      info,
		RawLength: len(encoded),
		Schemes:   schemes,
	}, nil
}

// buildSymbolMatrix builds the final module grid from the placement
// result. Each data region is framed by the finder pattern: a solid
// L on its left column and bottom row, and the alternating clock track
// on its top row and right column.
func buildSymbolMatrix(placement *Placement, info *SymbolInfo) *bitutil.BitMatrix {
	symbolWidth := info.MatrixWidth
	symbolHeight := info.MatrixHeight

	matrix := bitutil.NewBitMatrixWithSize(symbolWidth, symbolHeight)

	// Data region dimensions (usable modules, no finder/timing).
	drRows := info.DataRegionSizeRows
	drCols := info.DataRegionSizeColumns

	// Each region occupies its data modules plus the left L-bar column,
	// right timing column, top timing row and bottom L-bar row.
	numRegionsH := symbolWidth / (drCols + 2)
	numRegionsV := symbolHeight / (drRows + 2)

	for vRegion := 0; vRegion < numRegionsV; vRegion++ {
		for hRegion := 0; hRegion < numRegionsH; hRegion++ {
			originX := hRegion * (drCols + 2)
			originY := vRegion * (drRows + 2)

			// Solid L: left column and bottom row.
			for y := 0; y < drRows+2; y++ {
				matrix.Set(originX, originY+y)
			}
			for x := 0; x < drCols+2; x++ {
				matrix.Set(originX+x, originY+drRows+1)
			}

			// Clock track: top row and right column, alternating
			// starting dark at the region origin.
			for x := 0; x < drCols+2; x += 2 {
				matrix.Set(originX+x, originY)
			}
			for y := 0; y < drRows+2; y += 2 {
				matrix.Set(originX+drCols+1, originY+y)
			}
		}
	}

	// Copy the mapping matrix into the data regions, skipping one
	// module of frame on each region edge.
	for vRegion := 0; vRegion < numRegionsV; vRegion++ {
		for hRegion := 0; hRegion < numRegionsH; hRegion++ {
			for r := 0; r < drRows; r++ {
				for c := 0; c < drCols; c++ {
					if placement.Bit(hRegion*drCols+c, vRegion*drRows+r) {
						matrix.Set(hRegion*(drCols+2)+c+1, vRegion*(drRows+2)+r+1)
					}
				}
			}
		}
	}

	return matrix
}
