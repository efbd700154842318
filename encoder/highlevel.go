// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "errors"

// Encoding scheme letters, reported one per message byte. These match
// the scheme names of ISO/IEC 16022 clause 5.2.
const (
	SchemeASCII   = 'A'
	SchemeC40     = 'C'
	SchemeText    = 'T'
	SchemeX12     = 'X'
	SchemeEDIFACT = 'E'
	SchemeBase256 = 'B'
)

// Special codeword values in ASCII mode.
const (
	asciiUpperShift = 235 // shifts to the upper 128 characters
	asciiPad        = 129 // padding codeword
)

// Latch and unlatch codewords.
const (
	latchToC40     = 230
	latchToBase256 = 231
	latchToX12     = 238
	latchToText    = 239
	latchToEDIFACT = 240
	unlatchASCII   = 254  // returns from C40/Text/X12 to ASCII
	unlatchEDIFACT = 0x1F // 6-bit value that returns from EDIFACT to ASCII
)

// Minimum run lengths below which a latch into a compact scheme cannot
// pay for its latch/unlatch overhead. Runs at or above the minimum are
// still only latched when a codeword cost comparison against ASCII
// (which packs digit pairs) says the scheme wins.
const (
	minC40Run     = 6
	minTextRun    = 6
	minX12Run     = 6
	minEDIFACTRun = 12
)

// EncodeHighLevel performs high-level encoding of a Data Matrix message.
// It returns the data codewords and, alongside them, one scheme letter
// per message byte recording which encoding scheme carried that byte.
//
// Scheme selection is adaptive: runs of characters that a compact scheme
// (C40, Text, X12, EDIFACT, Base 256) encodes more densely than ASCII
// are latched into that scheme; everything else is encoded in ASCII,
// with consecutive digit pairs packed into single codewords.
func EncodeHighLevel(msg []byte) (codewords, schemes []byte, err error) {
	if len(msg) == 0 {
		return nil, nil, errors.New("datamatrix: empty message")
	}
	h := &highLevelEncoder{msg: msg}
	h.encode()
	return h.codewords, h.schemes, nil
}

type highLevelEncoder struct {
	msg       []byte
	pos       int
	codewords []byte
	schemes   []byte
}

func (h *highLevelEncoder) encode() {
	for h.pos < len(h.msg) {
		if n := h.base256Run(); n > 0 {
			h.encodeBase256(n)
			continue
		}
		switch {
		case h.tripletWorthwhile(isC40Char, minC40Run):
			h.encodeTriplets(latchToC40, SchemeC40, isC40Char, c40Value)
		case h.tripletWorthwhile(isX12Char, minX12Run):
			h.encodeTriplets(latchToX12, SchemeX12, isX12Char, x12Value)
		case h.tripletWorthwhile(isTextChar, minTextRun):
			h.encodeTriplets(latchToText, SchemeText, isTextChar, textValue)
		case h.edifactWorthwhile():
			h.encodeEDIFACT()
		default:
			h.encodeASCII()
		}
	}
}

// runLength counts the consecutive bytes at the current position that
// satisfy eligible.
func (h *highLevelEncoder) runLength(eligible func(byte) bool) int {
	n := 0
	for i := h.pos; i < len(h.msg) && eligible(h.msg[i]); i++ {
		n++
	}
	return n
}

// tripletWorthwhile reports whether latching into a triplet scheme at
// the current position beats ASCII for the whole triplets of the run.
// The scheme costs a latch, 2 codewords per triplet and an unlatch;
// ASCII costs 1 codeword per character but only half that for digit
// pairs, which is why a plain run-length threshold is not enough.
func (h *highLevelEncoder) tripletWorthwhile(eligible func(byte) bool, minRun int) bool {
	n := h.runLength(eligible)
	if n < minRun {
		return false
	}
	m := n - n%3
	return 2+2*m/3 < h.asciiCost(m)
}

// edifactWorthwhile reports whether latching into EDIFACT beats ASCII
// for the whole 4-character groups of the run. The scheme costs a
// latch, 3 codewords per group and the unlatch codeword.
func (h *highLevelEncoder) edifactWorthwhile() bool {
	n := h.runLength(isEDIFACTChar)
	if n < minEDIFACTRun {
		return false
	}
	m := n - n%4
	return 2+3*m/4 < h.asciiCost(m)
}

// asciiCost returns the number of codewords ASCII mode spends on the
// next count bytes, packing digit pairs. All triplet and EDIFACT
// characters are below 128, so Upper Shift never enters the comparison.
func (h *highLevelEncoder) asciiCost(count int) int {
	cost := 0
	for i := h.pos; i < h.pos+count; i++ {
		if isDigit(h.msg[i]) && i+1 < h.pos+count && isDigit(h.msg[i+1]) {
			i++
		}
		cost++
	}
	return cost
}

// encodeASCII encodes one step in ASCII mode.
// ASCII mode rules:
//   - ASCII 0-127: codeword = value + 1
//   - digit pairs "00"-"99": codeword = pair value + 130
//   - ASCII 128-255: Upper Shift (235) then value - 128 + 1
func (h *highLevelEncoder) encodeASCII() {
	c := h.msg[h.pos]
	if isDigit(c) && h.pos+1 < len(h.msg) && isDigit(h.msg[h.pos+1]) {
		pair := (int(c)-'0')*10 + int(h.msg[h.pos+1]) - '0'
		h.codewords = append(h.codewords, byte(pair+130))
		h.schemes = append(h.schemes, SchemeASCII, SchemeASCII)
		h.pos += 2
		return
	}
	if c <= 127 {
		h.codewords = append(h.codewords, c+1)
	} else {
		h.codewords = append(h.codewords, asciiUpperShift, c-128+1)
	}
	h.schemes = append(h.schemes, SchemeASCII)
	h.pos++
}

// encodeTriplets latches into a triplet scheme (C40, Text or X12),
// encodes whole triplets of 3 characters into 2 codewords each, then
// unlatches. A run tail that does not fill a triplet is left for the
// main loop, which encodes it in ASCII; this makes the scheme boundary
// explicit and keeps every input byte accounted for.
func (h *highLevelEncoder) encodeTriplets(latch, scheme byte, eligible func(byte) bool, value func(byte) int) {
	n := h.runLength(eligible)
	n -= n % 3

	h.codewords = append(h.codewords, latch)
	for end := h.pos + n; h.pos < end; h.pos += 3 {
		v := value(h.msg[h.pos])*1600 + value(h.msg[h.pos+1])*40 + value(h.msg[h.pos+2]) + 1
		h.codewords = append(h.codewords, byte(v/256), byte(v%256))
		h.schemes = append(h.schemes, scheme, scheme, scheme)
	}
	h.codewords = append(h.codewords, unlatchASCII)
}

// encodeEDIFACT latches into EDIFACT, packs groups of 4 characters
// (6 bits each) into 3 codewords, then emits the 6-bit unlatch value in
// the first position of a fresh group. The unused bits of the unlatch
// group are zero and only the byte carrying information is emitted.
func (h *highLevelEncoder) encodeEDIFACT() {
	n := h.runLength(isEDIFACTChar)
	n -= n % 4

	h.codewords = append(h.codewords, latchToEDIFACT)
	for end := h.pos + n; h.pos < end; h.pos += 4 {
		v := edifactValue(h.msg[h.pos])<<18 |
			edifactValue(h.msg[h.pos+1])<<12 |
			edifactValue(h.msg[h.pos+2])<<6 |
			edifactValue(h.msg[h.pos+3])
		h.codewords = append(h.codewords, byte(v>>16), byte(v>>8), byte(v))
		h.schemes = append(h.schemes, SchemeEDIFACT, SchemeEDIFACT, SchemeEDIFACT, SchemeEDIFACT)
	}
	h.codewords = append(h.codewords, unlatchEDIFACT<<2)
}

// base256Run returns the length of the run of binary bytes at the
// current position if carrying it in Base 256 is strictly cheaper than
// ASCII, and 0 otherwise. Base 256 costs a latch plus a 1- or 2-byte
// length field; in ASCII a byte >= 128 costs two codewords (Upper
// Shift), so the run pays off once it holds more high bytes than the
// header costs.
func (h *highLevelEncoder) base256Run() int {
	n := h.runLength(isBinaryChar)
	high := 0
	for i := h.pos; i < h.pos+n; i++ {
		if h.msg[i] >= 128 {
			high++
		}
	}
	header := 2
	if n > 249 {
		header = 3
	}
	if high > header {
		return n
	}
	return 0
}

// encodeBase256 latches into Base 256 and emits the length field and the
// run's bytes, each obscured with the 255-state randomization required
// by ISO/IEC 16022.
func (h *highLevelEncoder) encodeBase256(n int) {
	h.codewords = append(h.codewords, latchToBase256)
	if n <= 249 {
		h.appendRandomized255(byte(n))
	} else {
		h.appendRandomized255(byte(249 + n/250))
		h.appendRandomized255(byte(n % 250))
	}
	for end := h.pos + n; h.pos < end; h.pos++ {
		h.appendRandomized255(h.msg[h.pos])
		h.schemes = append(h.schemes, SchemeBase256)
	}
}

// appendRandomized255 appends b obscured with the 255-state algorithm.
// The position is the codeword's 1-based position in the data codeword
// stream.
func (h *highLevelEncoder) appendRandomized255(b byte) {
	position := len(h.codewords) + 1
	pseudoRandom := ((149 * position) % 255) + 1
	h.codewords = append(h.codewords, byte((int(b)+pseudoRandom)%256))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isBinaryChar reports bytes outside the printable ASCII range, the
// candidates for Base 256 encoding.
func isBinaryChar(b byte) bool { return b >= 128 || b < 32 }

// isC40Char returns true if the byte is in the basic C40 set
// (encodable without shift characters).
func isC40Char(b byte) bool {
	return b == ' ' || isDigit(b) || (b >= 'A' && b <= 'Z')
}

func c40Value(b byte) int {
	switch {
	case b == ' ':
		return 3
	case isDigit(b):
		return int(b-'0') + 4
	default:
		return int(b-'A') + 14
	}
}

// isTextChar returns true if the byte is in the basic Text set, the C40
// set with lowercase letters in place of uppercase.
func isTextChar(b byte) bool {
	return b == ' ' || isDigit(b) || (b >= 'a' && b <= 'z')
}

func textValue(b byte) int {
	switch {
	case b == ' ':
		return 3
	case isDigit(b):
		return int(b-'0') + 4
	default:
		return int(b-'a') + 14
	}
}

// isX12Char returns true if the byte is in the X12 set: the three X12
// terminator/separator characters plus space, digits and uppercase.
func isX12Char(b byte) bool {
	return b == '\r' || b == '*' || b == '>' || b == ' ' || isDigit(b) || (b >= 'A' && b <= 'Z')
}

func x12Value(b byte) int {
	switch {
	case b == '\r':
		return 0
	case b == '*':
		return 1
	case b == '>':
		return 2
	case b == ' ':
		return 3
	case isDigit(b):
		return int(b-'0') + 4
	default:
		return int(b-'A') + 14
	}
}

// isEDIFACTChar returns true for ASCII 32..94, the range EDIFACT packs
// into 6-bit values.
func isEDIFACTChar(b byte) bool { return b >= 32 && b <= 94 }

func edifactValue(b byte) int { return int(b) & 0x3F }

// randomize253State applies the 253-state randomization used for
// padding codewords, so that symbols with identical content but
// different capacities do not produce long runs of identical modules.
func randomize253State(codeword byte, position int) byte {
	pseudoRandom := ((149 * position) % 253) + 1
	tmp := int(codeword) + pseudoRandom
	if tmp > 254 {
		tmp -= 254
	}
	return byte(tmp)
}

// PadCodewords pads the codeword slice to the symbol's data capacity.
// The first pad codeword is the plain PAD value; the rest are PAD run
// through the 253-state randomization at their 1-based position.
func PadCodewords(codewords []byte, capacity int) []byte {
	if len(codewords) >= capacity {
		return codewords
	}
	result := make([]byte, capacity)
	copy(result, codewords)

	result[len(codewords)] = asciiPad
	for i := len(codewords) + 1; i < capacity; i++ {
		result[i] = randomize253State(asciiPad, i+1)
	}
	return result
}
