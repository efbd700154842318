package encoder

import (
	"strings"
	"testing"
)

func TestEncodeSmallestSymbol(t *testing.T) {
	sym, err := Encode([]byte("123456"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if sym.Info.MatrixWidth != 10 || sym.Info.MatrixHeight != 10 {
		t.Errorf("symbol = %dx%d, want 10x10", sym.Info.MatrixWidth, sym.Info.MatrixHeight)
	}
	if sym.RawLength != 3 {
		t.Errorf("raw length = %d, want 3", sym.RawLength)
	}
	if sym.Matrix.Width() != 10 || sym.Matrix.Height() != 10 {
		t.Errorf("matrix = %dx%d, want 10x10", sym.Matrix.Width(), sym.Matrix.Height())
	}
}

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Error("expected error for empty message")
	}
}

// TestEncodeFinderPattern checks the single-region finder pattern:
// solid dark modules along the left column and bottom row, alternating
// modules along the top row and right column starting dark at the
// corner.
func TestEncodeFinderPattern(t *testing.T) {
	sym, err := Encode([]byte("http://www.ruby-lang.org"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m := sym.Matrix
	w, h := m.Width(), m.Height()
	if w != 22 || h != 22 {
		t.Fatalf("symbol = %dx%d, want 22x22", w, h)
	}

	// The bottom-right corner is dark from the solid bottom row, and the
	// top-right corner is dark because the right clock column starts
	// dark; both override the alternating pattern's parity.
	for y := 0; y < h; y++ {
		if !m.Get(0, y) {
			t.Errorf("left column module (0,%d) should be dark", y)
		}
		want := y%2 == 0 || y == h-1
		if m.Get(w-1, y) != want {
			t.Errorf("right column module (%d,%d) = %v, want %v", w-1, y, m.Get(w-1, y), want)
		}
	}
	for x := 0; x < w; x++ {
		if !m.Get(x, h-1) {
			t.Errorf("bottom row module (%d,%d) should be dark", x, h-1)
		}
		want := x%2 == 0 || x == w-1
		if m.Get(x, 0) != want {
			t.Errorf("top row module (%d,0) = %v, want %v", x, m.Get(x, 0), want)
		}
	}
}

// TestEncodeMultiRegion checks the repeated finder pattern of a symbol
// with four data regions (32x32: 2x2 regions of 14x14 data modules).
func TestEncodeMultiRegion(t *testing.T) {
	// 46 ASCII codewords ('#' breaks every compact-scheme run): past
	// the 44-codeword 26x26, into 32x32.
	msg := strings.Repeat("a#", 23)
	sym, err := Encode([]byte(msg))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m := sym.Matrix
	if m.Width() != 32 || m.Height() != 32 {
		t.Fatalf("symbol = %dx%d, want 32x32", m.Width(), m.Height())
	}

	// Row 15 is the bottom solid bar of the upper regions, row 16 the
	// top clock track of the lower regions. Columns 15 and 16 mirror
	// this vertically. Indices 15 and 31 on a clock track are dark
	// regardless of parity: they sit on a neighboring region's right
	// clock column (or bottom bar), which starts dark at the boundary.
	for i := 0; i < 32; i++ {
		if !m.Get(i, 15) {
			t.Errorf("module (%d,15) should be dark (region bottom bar)", i)
		}
		if !m.Get(16, i) {
			t.Errorf("module (16,%d) should be dark (region left bar)", i)
		}
		want := i%2 == 0 || i == 15 || i == 31
		if m.Get(i, 16) != want {
			t.Errorf("module (%d,16) = %v, want %v (region clock track)", i, m.Get(i, 16), want)
		}
		if m.Get(15, i) != want {
			t.Errorf("module (15,%d) = %v, want %v (region clock track)", i, m.Get(15, i), want)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	first, err := Encode([]byte("determinism"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Encode([]byte("determinism"))
	if err != nil {
		t.Fatal(err)
	}
	if !first.Matrix.Equals(second.Matrix) {
		t.Error("identical messages must produce identical grids")
	}
}

func TestEncodeWithShape(t *testing.T) {
	sym, err := EncodeWithShape([]byte("12345678"), ShapeHintForceRectangle)
	if err != nil {
		t.Fatal(err)
	}
	if !sym.Info.Rectangular {
		t.Errorf("symbol = %s, want rectangular", sym.Info)
	}

	sym, err = EncodeWithShape([]byte("12345678"), ShapeHintForceSquare)
	if err != nil {
		t.Fatal(err)
	}
	if sym.Info.Rectangular {
		t.Errorf("symbol = %s, want square", sym.Info)
	}
}

func TestEncodeRawLengthWithinCapacity(t *testing.T) {
	msgs := []string{
		"a",
		"hello world",
		"123456789012345678901234567890",
		strings.Repeat("SEMACODE ", 40),
		"\xff\xfe\xfd\xfc\xfb\xfa",
	}
	for _, msg := range msgs {
		sym, err := Encode([]byte(msg))
		if err != nil {
			t.Fatalf("Encode(%q): %v", msg, err)
		}
		if sym.RawLength > sym.Info.DataCapacity {
			t.Errorf("Encode(%q): raw length %d exceeds capacity %d",
				msg, sym.RawLength, sym.Info.DataCapacity)
		}
	}
}
