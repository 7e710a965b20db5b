// Package bitfield gets and sets multi-bit spans inside 32- and 64-bit
// words. Positions count from the least significant bit. All functions are
// pure; a span is described by its starting bit position and its bit count,
// and count may legally equal the full word width.
package bitfield

// mask64 returns a word with the count lowest bits set. Counts at or above
// the word width saturate to a full mask instead of overflowing the shift.
func mask64(count uint) uint64 {
	if count >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<count - 1
}

func mask32(count uint) uint32 {
	if count >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<count - 1
}

// Get64 extracts the count-bit span of word starting at position.
func Get64(word uint64, position, count uint) uint64 {
	return word >> position & mask64(count)
}

// With64 returns word with the count-bit span at position replaced by the
// count lowest bits of value. Bits outside the span are untouched.
func With64(word uint64, position, count uint, value uint64) uint64 {
	m := mask64(count)
	return word&^(m<<position) | (value&m)<<position
}

// Get32 extracts the count-bit span of word starting at position.
func Get32(word uint32, position, count uint) uint32 {
	return word >> position & mask32(count)
}

// With32 returns word with the count-bit span at position replaced by the
// count lowest bits of value. Bits outside the span are untouched.
func With32(word uint32, position, count uint, value uint32) uint32 {
	m := mask32(count)
	return word&^(m<<position) | (value&m)<<position
}
