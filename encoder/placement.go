// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// Placement implements the ECC 200 module placement algorithm of
// ISO/IEC 16022 Annex F: a diagonal sweep that drops each codeword's
// 8 bits into an L-shaped "utah" pattern, with four special corner
// patterns for matrix dimensions the sweep does not cover evenly.
//
// The mapping matrix is the symbol matrix with finder and timing
// patterns stripped away; it contains only data modules.
type Placement struct {
	codewords []byte
	numRows   int
	numCols   int
	cells     []int8 // -1 = unvisited, 0 = light, 1 = dark
}

// NewPlacement creates a placement for the given codewords and mapping
// matrix dimensions (data area only, excluding finder patterns).
func NewPlacement(codewords []byte, numCols, numRows int) *Placement {
	p := &Placement{
		codewords: codewords,
		numRows:   numRows,
		numCols:   numCols,
		cells:     make([]int8, numRows*numCols),
	}
	for i := range p.cells {
		p.cells[i] = -1
	}
	return p
}

// NumRows returns the number of mapping matrix rows.
func (p *Placement) NumRows() int { return p.numRows }

// NumCols returns the number of mapping matrix columns.
func (p *Placement) NumCols() int { return p.numCols }

// Bit returns the module value at (col, row).
func (p *Placement) Bit(col, row int) bool {
	return p.cells[row*p.numCols+col] == 1
}

// Visited returns true if the placement assigned a value to (col, row).
func (p *Placement) Visited(col, row int) bool {
	return p.cells[row*p.numCols+col] >= 0
}

func (p *Placement) setBit(col, row int, bit bool) {
	if bit {
		p.cells[row*p.numCols+col] = 1
	} else {
		p.cells[row*p.numCols+col] = 0
	}
}

// Place runs the placement algorithm, assigning every codeword bit a
// position in the mapping matrix. The position of bit n of codeword k
// is a pure function of (k, n) and the matrix dimensions.
//
// Place panics if the codeword count does not exactly match the matrix
// capacity. That is an internal invariant: symbol lookup and error
// correction always produce a full codeword sequence, so the panic is
// unreachable through the package API.
func (p *Placement) Place() {
	pos := 0 // index of the codeword being placed
	row := 4
	col := 0

	for {
		// The four corner patterns fire at fixed sweep positions.
		if row == p.numRows && col == 0 {
			p.corner1(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner2(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner3(pos)
			pos++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner4(pos)
			pos++
		}

		// Sweep diagonally up and to the right.
		for {
			if row < p.numRows && col >= 0 && !p.Visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// Sweep diagonally down and to the left.
		for {
			if row >= 0 && col < p.numCols && !p.Visited(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// The lower-right 2x2 corner is not reached by the sweep when the
	// module count is not divisible by 8; it gets a fixed checker
	// pattern instead of codeword bits.
	if !p.Visited(p.numCols-1, p.numRows-1) {
		p.setBit(p.numCols-1, p.numRows-1, true)
		p.setBit(p.numCols-2, p.numRows-2, true)
	}

	if pos != len(p.codewords) {
		panic(fmt.Sprintf("datamatrix: placement overflow: matrix holds %d codewords, got %d",
			pos, len(p.codewords)))
	}
}

// module places a single bit, wrapping positions that fall outside the
// matrix boundaries back into it per Annex F.
func (p *Placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	if row >= p.numRows {
		row -= p.numRows
	}
	if col >= p.numCols {
		col -= p.numCols
	}

	v := false
	if pos < len(p.codewords) {
		v = p.codewords[pos]&(1<<uint(7-bit)) != 0
	}
	p.setBit(col, row, v)
}

// utah places the 8 bits of a standard utah-shaped codeword. (row, col)
// is the lower-right corner of the nominal L-shaped pattern.
func (p *Placement) utah(row, col, pos int) {
	p.module(row-2, col-2, pos, 0)
	p.module(row-2, col-1, pos, 1)
	p.module(row-1, col-2, pos, 2)
	p.module(row-1, col-1, pos, 3)
	p.module(row-1, col, pos, 4)
	p.module(row, col-2, pos, 5)
	p.module(row, col-1, pos, 6)
	p.module(row, col, pos, 7)
}

// corner1 places the corner pattern used when the sweep reaches the
// bottom-left corner exactly.
func (p *Placement) corner1(pos int) {
	p.module(p.numRows-1, 0, pos, 0)
	p.module(p.numRows-1, 1, pos, 1)
	p.module(p.numRows-1, 2, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-1, pos, 5)
	p.module(2, p.numCols-1, pos, 6)
	p.module(3, p.numCols-1, pos, 7)
}

// corner2 places the corner pattern for column counts not divisible by 4.
func (p *Placement) corner2(pos int) {
	p.module(p.numRows-3, 0, pos, 0)
	p.module(p.numRows-2, 0, pos, 1)
	p.module(p.numRows-1, 0, pos, 2)
	p.module(0, p.numCols-4, pos, 3)
	p.module(0, p.numCols-3, pos, 4)
	p.module(0, p.numCols-2, pos, 5)
	p.module(0, p.numCols-1, pos, 6)
	p.module(1, p.numCols-1, pos, 7)
}

// corner3 places the corner pattern for column counts congruent to 4 mod 8.
func (p *Placement) corner3(pos int) {
	p.module(p.numRows-3, 0, pos, 0)
	p.module(p.numRows-2, 0, pos, 1)
	p.module(p.numRows-1, 0, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-1, pos, 5)
	p.module(2, p.numCols-1, pos, 6)
	p.module(3, p.numCols-1, pos, 7)
}

// corner4 places the corner pattern for column counts divisible by 8.
func (p *Placement) corner4(pos int) {
	p.module(p.numRows-1, 0, pos, 0)
	p.module(p.numRows-1, p.numCols-1, pos, 1)
	p.module(0, p.numCols-3, pos, 2)
	p.module(0, p.numCols-2, pos, 3)
	p.module(0, p.numCols-1, pos, 4)
	p.module(1, p.numCols-3, pos, 5)
	p.module(1, p.numCols-2, pos, 6)
	p.module(1, p.numCols-1, pos, 7)
}
