//go:build !binio_nosafety

package binio

// safetyChecks gates every input-validation branch in this package. The
// default build keeps the checks. Compiling with -tags binio_nosafety sets
// it to false, the branches become dead code, and any call that would have
// failed a check is undefined behavior (typically a nil dereference or a
// slice bounds panic).
const safetyChecks = true
