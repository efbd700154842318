package encoder

import (
	"errors"
	"testing"
)

func TestLookupSmallestFit(t *testing.T) {
	tests := []struct {
		dataCodewords int
		wantWidth     int
		wantHeight    int
	}{
		{1, 10, 10},
		{3, 10, 10}, // exact boundary selects the entry, not the next one
		{4, 12, 12},
		{8, 14, 14},
		{9, 32, 8}, // the 32x8 rectangle is the smallest 10-codeword symbol
		{24, 22, 22},
		{30, 22, 22},
		{31, 36, 16},
		{1558, 144, 144},
	}

	for _, tc := range tests {
		si, err := Lookup(tc.dataCodewords, ShapeHintForceNone)
		if err != nil {
			t.Fatalf("Lookup(%d): %v", tc.dataCodewords, err)
		}
		if si.MatrixWidth != tc.wantWidth || si.MatrixHeight != tc.wantHeight {
			t.Errorf("Lookup(%d) = %dx%d, want %dx%d",
				tc.dataCodewords, si.MatrixWidth, si.MatrixHeight, tc.wantWidth, tc.wantHeight)
		}
	}
}

func TestLookupSquarePreferredAtEqualCapacity(t *testing.T) {
	// Capacity 5 exists both as 12x12 square and 18x8 rectangle; the
	// square wins without a shape hint.
	si, err := Lookup(5, ShapeHintForceNone)
	if err != nil {
		t.Fatal(err)
	}
	if si.Rectangular {
		t.Errorf("Lookup(5) chose %s, want the square", si)
	}

	si, err = Lookup(5, ShapeHintForceRectangle)
	if err != nil {
		t.Fatal(err)
	}
	if !si.Rectangular || si.MatrixWidth != 18 || si.MatrixHeight != 8 {
		t.Errorf("Lookup(5, rectangle) = %s, want 18x8", si)
	}
}

func TestLookupShapeHints(t *testing.T) {
	si, err := Lookup(10, ShapeHintForceSquare)
	if err != nil {
		t.Fatal(err)
	}
	if si.Rectangular {
		t.Errorf("square hint returned %s", si)
	}

	// Rectangles top out at 49 data codewords.
	if _, err := Lookup(50, ShapeHintForceRectangle); err == nil {
		t.Error("expected error for 50 codewords with rectangle hint")
	}
}

func TestLookupTooLong(t *testing.T) {
	_, err := Lookup(1559, ShapeHintForceNone)
	if !errors.Is(err, ErrNoSuitableSymbol) {
		t.Errorf("err = %v, want ErrNoSuitableSymbol", err)
	}
}

func TestCapacityMonotonic(t *testing.T) {
	sizes := Sizes()
	for i := 1; i < len(sizes); i++ {
		if sizes[i].DataCapacity < sizes[i-1].DataCapacity {
			t.Errorf("capacity decreases at index %d: %d after %d",
				i, sizes[i].DataCapacity, sizes[i-1].DataCapacity)
		}
	}
}

func TestLookupBySize(t *testing.T) {
	si, err := LookupBySize(32, 8)
	if err != nil {
		t.Fatal(err)
	}
	if si.DataCapacity != 10 || si.ErrorCodewords != 11 {
		t.Errorf("32x8 = %s", si)
	}

	if _, err := LookupBySize(11, 11); err == nil {
		t.Error("expected error for nonexistent size")
	}
}

// TestMappingMatrixConsistency checks, for every table entry, that the
// mapping matrix has exactly 8 modules per codeword, up to the fixed
// 2x2 corner pattern left over when the area is not divisible by 8.
func TestMappingMatrixConsistency(t *testing.T) {
	for _, si := range Sizes() {
		area := si.MappingMatrixRows() * si.MappingMatrixColumns()
		rem := area - 8*si.TotalCodewords()
		if rem != 0 && rem != 4 {
			t.Errorf("%s: mapping area %d does not match %d codewords (rem %d)",
				si.String(), area, si.TotalCodewords(), rem)
		}
	}
}

// TestBlockStructureConsistency checks that the interleaved block
// parameters reproduce each entry's total data and EC counts.
func TestBlockStructureConsistency(t *testing.T) {
	for _, si := range Sizes() {
		blocks := si.InterleavedBlockCount()
		if got := blocks * si.RSBlockError; got != si.ErrorCodewords {
			t.Errorf("%s: %d blocks x %d EC = %d, want %d",
				si.String(), blocks, si.RSBlockError, got, si.ErrorCodewords)
		}
		data := si.firstBlockCount() * si.RSBlockData
		if si.RSBlockData2 > 0 {
			data += si.NumRSBlocks2 * si.RSBlockData2
		}
		if data != si.DataCapacity {
			t.Errorf("%s: block data sums to %d, want %d", si.String(), data, si.DataCapacity)
		}
	}
}
