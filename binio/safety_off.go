//go:build binio_nosafety

package binio

const safetyChecks = false
