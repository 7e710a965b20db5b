// Package binio provides typed, endian-aware reading and writing of
// fixed-width numeric values against two backends: a bounded in-memory
// buffer and a seekable file stream. Both backends sit behind the same
// Writer and Reader types, which dispatch on the backend kind at a single
// transfer choke point.
//
// Every operation reports failure through a bitmask Code instead of an
// error value; multiple failing conditions compose with bitwise OR and a
// zero code means success. Callers on a hot path may discard the code.
//
// All input validation can be compiled out with the build tag
// binio_nosafety, after which calls with invalid arguments are undefined
// behavior. See the safetyChecks constant.
package binio

// BackendKind identifies the storage target a Writer or Reader is bound to.
type BackendKind uint8

const (
	// BackendBuffer is a bounded in-memory byte region of fixed length.
	BackendBuffer BackendKind = iota
	// BackendFile is a seekable operating-system file stream.
	BackendFile
)

// String returns the backend name for diagnostics.
func (k BackendKind) String() string {
	switch k {
	case BackendBuffer:
		return "buffer"
	case BackendFile:
		return "file"
	default:
		return "unknown"
	}
}
