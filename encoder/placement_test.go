package encoder

import "testing"

// TestPlaceCoversEverySize runs the placement for every symbol size in
// the table and checks that each mapping matrix cell is assigned.
func TestPlaceCoversEverySize(t *testing.T) {
	for _, si := range Sizes() {
		t.Run(si.String(), func(t *testing.T) {
			codewords := make([]byte, si.TotalCodewords())
			for i := range codewords {
				codewords[i] = byte(i * 7)
			}
			p := NewPlacement(codewords, si.MappingMatrixColumns(), si.MappingMatrixRows())
			p.Place()

			unvisited := 0
			for row := 0; row < p.NumRows(); row++ {
				for col := 0; col < p.NumCols(); col++ {
					if !p.Visited(col, row) {
						unvisited++
					}
				}
			}
			// The lower-right 2x2 pattern leaves two cells untouched
			// when the area is not divisible by 8.
			if unvisited != 0 && unvisited != 2 {
				t.Errorf("%d unvisited cells", unvisited)
			}
		})
	}
}

// TestPlaceCornerPattern checks the fixed checker pattern in the
// lower-right corner of mapping matrices not divisible by 8 (the 12x12
// symbol's 10x10 mapping matrix is the smallest case).
func TestPlaceCornerPattern(t *testing.T) {
	si, err := LookupBySize(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlacement(make([]byte, si.TotalCodewords()), si.MappingMatrixColumns(), si.MappingMatrixRows())
	p.Place()

	rows, cols := p.NumRows(), p.NumCols()
	if !p.Bit(cols-1, rows-1) || !p.Bit(cols-2, rows-2) {
		t.Error("corner checker bits should be dark")
	}
	if p.Bit(cols-2, rows-1) || p.Bit(cols-1, rows-2) {
		t.Error("corner checker off-diagonal bits should be light")
	}
}

// TestPlaceDeterministic checks that the position of every bit is a
// pure function of the codewords and dimensions.
func TestPlaceDeterministic(t *testing.T) {
	si, err := LookupBySize(22, 22)
	if err != nil {
		t.Fatal(err)
	}
	codewords := make([]byte, si.TotalCodewords())
	for i := range codewords {
		codewords[i] = byte(255 - i)
	}

	first := NewPlacement(codewords, si.MappingMatrixColumns(), si.MappingMatrixRows())
	first.Place()
	second := NewPlacement(codewords, si.MappingMatrixColumns(), si.MappingMatrixRows())
	second.Place()

	for row := 0; row < first.NumRows(); row++ {
		for col := 0; col < first.NumCols(); col++ {
			if first.Bit(col, row) != second.Bit(col, row) {
				t.Fatalf("bit (%d,%d) differs between runs", col, row)
			}
		}
	}
}

// TestPlaceBitCount checks that the number of dark modules equals the
// number of set bits across all codewords (plus the two fixed corner
// bits when present), a consequence of each bit being placed exactly
// once.
func TestPlaceBitCount(t *testing.T) {
	si, err := LookupBySize(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	// 8 codewords, each 0xF0: 4 set bits per codeword.
	codewords := make([]byte, si.TotalCodewords())
	for i := range codewords {
		codewords[i] = 0xF0
	}
	p := NewPlacement(codewords, si.MappingMatrixColumns(), si.MappingMatrixRows())
	p.Place()

	dark := 0
	for row := 0; row < p.NumRows(); row++ {
		for col := 0; col < p.NumCols(); col++ {
			if p.Bit(col, row) {
				dark++
			}
		}
	}
	if want := 4 * si.TotalCodewords(); dark != want {
		t.Errorf("dark modules = %d, want %d", dark, want)
	}
}

func TestPlaceOverflowPanics(t *testing.T) {
	si, err := LookupBySize(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	// One codeword short of the symbol's capacity.
	p := NewPlacement(make([]byte, si.TotalCodewords()-1), si.MappingMatrixColumns(), si.MappingMatrixRows())
	defer func() {
		if recover() == nil {
			t.Error("expected panic for codeword/capacity mismatch")
		}
	}()
	p.Place()
}
