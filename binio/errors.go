package binio

import (
	"fmt"
	"strings"
)

// InitCode reports the outcome of constructing a Writer or Reader. It is a
// bitmask: independent failing conditions are OR'd together, and InitOK
// (zero) means construction succeeded.
type InitCode uint32

// InitOK means the instance was constructed.
const InitOK InitCode = 0

const (
	// InitNilData means the buffer backend was given a nil byte slice.
	InitNilData InitCode = 1 << iota
	// InitLengthZero means the buffer backend was given an empty region.
	InitLengthZero
	// InitInvalidFile means the file backend was given a nil file handle.
	InitInvalidFile
)

// Has reports whether every bit of flag is set in c.
func (c InitCode) Has(flag InitCode) bool { return c&flag == flag }

// String returns a pipe-separated list of the set condition names.
func (c InitCode) String() string {
	if c == InitOK {
		return "ok"
	}
	var parts []string
	if c.Has(InitNilData) {
		parts = append(parts, "nil data")
	}
	if c.Has(InitLengthZero) {
		parts = append(parts, "zero length")
	}
	if c.Has(InitInvalidFile) {
		parts = append(parts, "invalid file")
	}
	return strings.Join(parts, "|")
}

// Err converts c into an error: nil when c is InitOK.
func (c InitCode) Err() error {
	if c == InitOK {
		return nil
	}
	return fmt.Errorf("binio: init failed: %s", c)
}

// Code reports the outcome of a transfer, seek, or typed access. It is a
// bitmask: independent failing conditions are OR'd together, and OK (zero)
// means success. Unless a condition is documented otherwise, a non-OK code
// means nothing was transferred and the cursor did not move.
type Code uint32

// OK means the operation succeeded.
const OK Code = 0

const (
	// End means the transfer would pass the end of the backend: the buffer
	// is full (writes) or exhausted (reads), a buffer seek target is out of
	// bounds, or a file transfer came up short.
	End Code = 1 << iota
	// NilHandle means the operation was invoked on a nil Writer or Reader.
	NilHandle
	// NilData means the backend payload is gone: a nil buffer region or a
	// nil file handle.
	NilData
	// InvalidValue means a caller-supplied argument was unusable (nil byte
	// slice) or a normalized value fell outside its domain. For normalized
	// writes the value is still encoded and written; the flag tells the
	// caller the input was out of range.
	InvalidValue
	// SeekFailed means the file backend's seek was rejected by the
	// operating system.
	SeekFailed
)

// Has reports whether every bit of flag is set in c.
func (c Code) Has(flag Code) bool { return c&flag == flag }

// String returns a pipe-separated list of the set condition names.
func (c Code) String() string {
	if c == OK {
		return "ok"
	}
	var parts []string
	if c.Has(End) {
		parts = append(parts, "end of data")
	}
	if c.Has(NilHandle) {
		parts = append(parts, "nil handle")
	}
	if c.Has(NilData) {
		parts = append(parts, "nil data")
	}
	if c.Has(InvalidValue) {
		parts = append(parts, "invalid value")
	}
	if c.Has(SeekFailed) {
		parts = append(parts, "seek failed")
	}
	return strings.Join(parts, "|")
}

// Err converts c into an error: nil when c is OK.
func (c Code) Err() error {
	if c == OK {
		return nil
	}
	return fmt.Errorf("binio: %s", c)
}
