// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/semacode/semacode/reedsolomon"
)

// EncodeECC200 computes the Reed-Solomon error correction codewords for
// the given data codewords and returns the full codeword sequence
// (data followed by EC). Data Matrix uses GF(256) with primitive
// polynomial 0x12D.
//
// Larger symbols split the data across interleaved RS blocks: codeword
// i belongs to block i mod blockCount. Parity is computed per block and
// the parity codewords are interleaved back in the same fashion.
func EncodeECC200(codewords []byte, info *SymbolInfo) ([]byte, error) {
	if len(codewords) != info.DataCapacity {
		return nil, fmt.Errorf("datamatrix: expected %d data codewords, got %d",
			info.DataCapacity, len(codewords))
	}

	blockCount := info.InterleavedBlockCount()
	ecPerBlock := info.RSBlockError

	result := make([]byte, info.TotalCodewords())
	copy(result, codewords)

	rs := reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

	if blockCount == 1 {
		copy(result[info.DataCapacity:], rs.Encode(codewords, ecPerBlock))
		return result, nil
	}

	// De-interleave the data into blocks. The first firstBlockCount
	// blocks hold RSBlockData codewords; any remaining blocks hold
	// RSBlockData2 (one fewer, 144x144 only).
	firstCount := info.firstBlockCount()
	blocks := make([][]byte, blockCount)
	for i := range blocks {
		size := info.RSBlockData
		if i >= firstCount {
			size = info.RSBlockData2
		}
		blocks[i] = make([]byte, 0, size)
	}
	for i, cw := range codewords {
		b := i % blockCount
		if len(blocks[b]) < cap(blocks[b]) {
			blocks[b] = append(blocks[b], cw)
		}
	}

	// Per-block parity, interleaved back into the EC region.
	ecBlocks := make([][]byte, blockCount)
	for i := range blocks {
		ecBlocks[i] = rs.Encode(blocks[i], ecPerBlock)
	}
	out := info.DataCapacity
	for i := 0; i < ecPerBlock; i++ {
		for j := 0; j < blockCount; j++ {
			result[out] = ecBlocks[j][i]
			out++
		}
	}

	return result, nil
}
