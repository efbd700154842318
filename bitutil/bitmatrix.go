// Package bitutil provides the bit-level container used to hold
// Data Matrix module grids.
package bitutil

import "strings"

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given dimension.
func NewBitMatrix(dimension int) *BitMatrix {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and height.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBoolMatrix creates a BitMatrix from a 2D boolean array.
// image[0] is the top row.
func ParseBoolMatrix(image [][]bool) *BitMatrix {
	height := len(image)
	width := len(image[0])
	bm := NewBitMatrixWithSize(width, height)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if image[i][j] {
				bm.Set(j, i)
			}
		}
	}
	return bm
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Clear clears all bits.
func (bm *BitMatrix) Clear() {
	for i := range bm.data {
		bm.data[i] = 0
	}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// ToBoolMatrix returns the matrix as a [][]bool, row 0 at the top.
func (bm *BitMatrix) ToBoolMatrix() [][]bool {
	rows := make([][]bool, bm.height)
	for y := 0; y < bm.height; y++ {
		row := make([]bool, bm.width)
		for x := 0; x < bm.width; x++ {
			row[x] = bm.Get(x, y)
		}
		rows[y] = row
	}
	return rows
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowSize != other.rowSize {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
