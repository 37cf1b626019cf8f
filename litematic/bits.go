package litematic

import "math/bits"

// The block array stores one palette index per cell as a fixed-width
// unsigned field in a run of 64-bit words. The width rarely divides 64, so
// a field may straddle two adjacent words; get/set below treat the pair as
// one little-endian 128-bit window instead of rotating masks around a
// single word.

// RequiredBits returns the minimum field width able to represent every
// palette index in [0, paletteSize). The format never goes below 2 bits.
func RequiredBits(paletteSize int) int {
	b := bits.Len64(uint64(paletteSize - 1))
	if b < 2 {
		return 2
	}
	return b
}

// RequiredWords returns ceil(count*bitsPerField/64), the number of 64-bit
// words needed to hold count fields.
func RequiredWords(count int64, bitsPerField int) int {
	return int((count*int64(bitsPerField) + 63) / 64)
}

// getBits extracts field i of width bitsPerField. The word index is the
// caller's responsibility; an out-of-range index is a caller bug.
func getBits(words []uint64, i int64, bitsPerField int) uint64 {
	off := i * int64(bitsPerField)
	w := int(off >> 6)
	sh := uint(off & 63)
	mask := uint64(1)<<bitsPerField - 1

	v := words[w] >> sh
	if sh+uint(bitsPerField) > 64 && w+1 < len(words) {
		v |= words[w+1] << (64 - sh)
	}
	return v & mask
}

// setBits overwrites field i of width bitsPerField with value, leaving
// every other field untouched.
func setBits(words []uint64, i int64, bitsPerField int, value uint64) {
	off := i * int64(bitsPerField)
	w := int(off >> 6)
	sh := uint(off & 63)
	mask := uint64(1)<<bitsPerField - 1
	value &= mask

	words[w] = words[w]&^(mask<<sh) | value<<sh
	if sh+uint(bitsPerField) > 64 && w+1 < len(words) {
		rem := 64 - sh
		words[w+1] = words[w+1]&^(mask>>rem) | value>>rem
	}
}
