package binio

import (
	"encoding/binary"
	"math"
)

// Normalized typed reads. The stored fixed-width integer is divided by the
// maximum of its width to recover a float in [0,1] (unsigned) or roughly
// [-1,1] (signed; the most negative value decodes slightly below -1).
// Widths up to 16 bits decode in float32, 32- and 64-bit widths in
// float64, mirroring the write side.

// ReadNU8 decodes an unsigned 8-bit normalized integer to [0,1].
func (r *Reader) ReadNU8() (float32, Code) {
	v, c := r.ReadU8()
	return float32(v) / math.MaxUint8, c
}

// ReadNU8LE is ReadNU8; order is irrelevant at this width.
func (r *Reader) ReadNU8LE() (float32, Code) { return r.ReadNU8() }

// ReadNU8BE is ReadNU8; order is irrelevant at this width.
func (r *Reader) ReadNU8BE() (float32, Code) { return r.ReadNU8() }

// ReadNU16 decodes a host-order unsigned 16-bit normalized integer.
func (r *Reader) ReadNU16() (float32, Code) {
	v, c := r.readFixed16(binary.NativeEndian)
	return float32(v) / math.MaxUint16, c
}

// ReadNU16LE is ReadNU16 in little-endian order.
func (r *Reader) ReadNU16LE() (float32, Code) {
	v, c := r.readFixed16(binary.LittleEndian)
	return float32(v) / math.MaxUint16, c
}

// ReadNU16BE is ReadNU16 in big-endian order.
func (r *Reader) ReadNU16BE() (float32, Code) {
	v, c := r.readFixed16(binary.BigEndian)
	return float32(v) / math.MaxUint16, c
}

// ReadNU32 decodes a host-order unsigned 32-bit normalized integer.
func (r *Reader) ReadNU32() (float64, Code) {
	v, c := r.readFixed32(binary.NativeEndian)
	return float64(v) / math.MaxUint32, c
}

// ReadNU32LE is ReadNU32 in little-endian order.
func (r *Reader) ReadNU32LE() (float64, Code) {
	v, c := r.readFixed32(binary.LittleEndian)
	return float64(v) / math.MaxUint32, c
}

// ReadNU32BE is ReadNU32 in big-endian order.
func (r *Reader) ReadNU32BE() (float64, Code) {
	v, c := r.readFixed32(binary.BigEndian)
	return float64(v) / math.MaxUint32, c
}

// ReadNU64 decodes a host-order unsigned 64-bit normalized integer.
func (r *Reader) ReadNU64() (float64, Code) {
	v, c := r.readFixed64(binary.NativeEndian)
	return float64(v) / math.MaxUint64, c
}

// ReadNU64LE is ReadNU64 in little-endian order.
func (r *Reader) ReadNU64LE() (float64, Code) {
	v, c := r.readFixed64(binary.LittleEndian)
	return float64(v) / math.MaxUint64, c
}

// ReadNU64BE is ReadNU64 in big-endian order.
func (r *Reader) ReadNU64BE() (float64, Code) {
	v, c := r.readFixed64(binary.BigEndian)
	return float64(v) / math.MaxUint64, c
}

// ReadNI8 decodes a signed 8-bit normalized integer to [-1,1].
func (r *Reader) ReadNI8() (float32, Code) {
	v, c := r.ReadI8()
	return float32(v) / math.MaxInt8, c
}

// ReadNI8LE is ReadNI8; order is irrelevant at this width.
func (r *Reader) ReadNI8LE() (float32, Code) { return r.ReadNI8() }

// ReadNI8BE is ReadNI8; order is irrelevant at this width.
func (r *Reader) ReadNI8BE() (float32, Code) { return r.ReadNI8() }

// ReadNI16 decodes a host-order signed 16-bit normalized integer.
func (r *Reader) ReadNI16() (float32, Code) {
	v, c := r.ReadI16()
	return float32(v) / math.MaxInt16, c
}

// ReadNI16LE is ReadNI16 in little-endian order.
func (r *Reader) ReadNI16LE() (float32, Code) {
	v, c := r.ReadI16LE()
	return float32(v) / math.MaxInt16, c
}

// ReadNI16BE is ReadNI16 in big-endian order.
func (r *Reader) ReadNI16BE() (float32, Code) {
	v, c := r.ReadI16BE()
	return float32(v) / math.MaxInt16, c
}

// ReadNI32 decodes a host-order signed 32-bit normalized integer.
func (r *Reader) ReadNI32() (float64, Code) {
	v, c := r.ReadI32()
	return float64(v) / math.MaxInt32, c
}

// ReadNI32LE is ReadNI32 in little-endian order.
func (r *Reader) ReadNI32LE() (float64, Code) {
	v, c := r.ReadI32LE()
	return float64(v) / math.MaxInt32, c
}

// ReadNI32BE is ReadNI32 in big-endian order.
func (r *Reader) ReadNI32BE() (float64, Code) {
	v, c := r.ReadI32BE()
	return float64(v) / math.MaxInt32, c
}

// ReadNI64 decodes a host-order signed 64-bit normalized integer.
func (r *Reader) ReadNI64() (float64, Code) {
	v, c := r.ReadI64()
	return float64(v) / math.MaxInt64, c
}

// ReadNI64LE is ReadNI64 in little-endian order.
func (r *Reader) ReadNI64LE() (float64, Code) {
	v, c := r.ReadI64LE()
	return float64(v) / math.MaxInt64, c
}

// ReadNI64BE is ReadNI64 in big-endian order.
func (r *Reader) ReadNI64BE() (float64, Code) {
	v, c := r.ReadI64BE()
	return float64(v) / math.MaxInt64, c
}
