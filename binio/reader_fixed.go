package binio

import (
	"encoding/binary"
	"math"
)

// Fixed-width typed reads. Each accessor fills the scratch buffer through
// the transfer choke point and decodes it with the requested byte order.
// On a non-OK code the value result is zero and, for the buffer backend,
// the cursor has not moved.

func (r *Reader) readFixed16(order binary.ByteOrder) (uint16, Code) {
	if c := r.fill(2); c != OK {
		return 0, c
	}
	return order.Uint16(r.scratch[:2]), OK
}

func (r *Reader) readFixed32(order binary.ByteOrder) (uint32, Code) {
	if c := r.fill(4); c != OK {
		return 0, c
	}
	return order.Uint32(r.scratch[:4]), OK
}

func (r *Reader) readFixed64(order binary.ByteOrder) (uint64, Code) {
	if c := r.fill(8); c != OK {
		return 0, c
	}
	return order.Uint64(r.scratch[:8]), OK
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, Code) {
	if c := r.fill(1); c != OK {
		return 0, c
	}
	return r.scratch[0], OK
}

// ReadU8LE reads a single byte; order is irrelevant at this width.
func (r *Reader) ReadU8LE() (uint8, Code) { return r.ReadU8() }

// ReadU8BE reads a single byte; order is irrelevant at this width.
func (r *Reader) ReadU8BE() (uint8, Code) { return r.ReadU8() }

// ReadU16 reads a uint16 in host byte order.
func (r *Reader) ReadU16() (uint16, Code) { return r.readFixed16(binary.NativeEndian) }

// ReadU16LE reads a little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, Code) { return r.readFixed16(binary.LittleEndian) }

// ReadU16BE reads a big-endian uint16.
func (r *Reader) ReadU16BE() (uint16, Code) { return r.readFixed16(binary.BigEndian) }

// ReadU32 reads a uint32 in host byte order.
func (r *Reader) ReadU32() (uint32, Code) { return r.readFixed32(binary.NativeEndian) }

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, Code) { return r.readFixed32(binary.LittleEndian) }

// ReadU32BE reads a big-endian uint32.
func (r *Reader) ReadU32BE() (uint32, Code) { return r.readFixed32(binary.BigEndian) }

// ReadU64 reads a uint64 in host byte order.
func (r *Reader) ReadU64() (uint64, Code) { return r.readFixed64(binary.NativeEndian) }

// ReadU64LE reads a little-endian uint64.
func (r *Reader) ReadU64LE() (uint64, Code) { return r.readFixed64(binary.LittleEndian) }

// ReadU64BE reads a big-endian uint64.
func (r *Reader) ReadU64BE() (uint64, Code) { return r.readFixed64(binary.BigEndian) }

// ReadI8 reads a single byte as a signed integer.
func (r *Reader) ReadI8() (int8, Code) {
	v, c := r.ReadU8()
	return int8(v), c
}

// ReadI8LE reads a single byte; order is irrelevant at this width.
func (r *Reader) ReadI8LE() (int8, Code) { return r.ReadI8() }

// ReadI8BE reads a single byte; order is irrelevant at this width.
func (r *Reader) ReadI8BE() (int8, Code) { return r.ReadI8() }

// ReadI16 reads an int16 in host byte order.
func (r *Reader) ReadI16() (int16, Code) {
	v, c := r.readFixed16(binary.NativeEndian)
	return int16(v), c
}

// ReadI16LE reads a little-endian int16.
func (r *Reader) ReadI16LE() (int16, Code) {
	v, c := r.readFixed16(binary.LittleEndian)
	return int16(v), c
}

// ReadI16BE reads a big-endian int16.
func (r *Reader) ReadI16BE() (int16, Code) {
	v, c := r.readFixed16(binary.BigEndian)
	return int16(v), c
}

// ReadI32 reads an int32 in host byte order.
func (r *Reader) ReadI32() (int32, Code) {
	v, c := r.readFixed32(binary.NativeEndian)
	return int32(v), c
}

// ReadI32LE reads a little-endian int32.
func (r *Reader) ReadI32LE() (int32, Code) {
	v, c := r.readFixed32(binary.LittleEndian)
	return int32(v), c
}

// ReadI32BE reads a big-endian int32.
func (r *Reader) ReadI32BE() (int32, Code) {
	v, c := r.readFixed32(binary.BigEndian)
	return int32(v), c
}

// ReadI64 reads an int64 in host byte order.
func (r *Reader) ReadI64() (int64, Code) {
	v, c := r.readFixed64(binary.NativeEndian)
	return int64(v), c
}

// ReadI64LE reads a little-endian int64.
func (r *Reader) ReadI64LE() (int64, Code) {
	v, c := r.readFixed64(binary.LittleEndian)
	return int64(v), c
}

// ReadI64BE reads a big-endian int64.
func (r *Reader) ReadI64BE() (int64, Code) {
	v, c := r.readFixed64(binary.BigEndian)
	return int64(v), c
}

// ReadF32 reads a float32 bit pattern in host byte order. The bits are
// reinterpreted verbatim, so NaN payloads and signed zeros survive.
func (r *Reader) ReadF32() (float32, Code) {
	v, c := r.readFixed32(binary.NativeEndian)
	return math.Float32frombits(v), c
}

// ReadF32LE reads a little-endian float32 bit pattern.
func (r *Reader) ReadF32LE() (float32, Code) {
	v, c := r.readFixed32(binary.LittleEndian)
	return math.Float32frombits(v), c
}

// ReadF32BE reads a big-endian float32 bit pattern.
func (r *Reader) ReadF32BE() (float32, Code) {
	v, c := r.readFixed32(binary.BigEndian)
	return math.Float32frombits(v), c
}

// ReadF64 reads a float64 bit pattern in host byte order.
func (r *Reader) ReadF64() (float64, Code) {
	v, c := r.readFixed64(binary.NativeEndian)
	return math.Float64frombits(v), c
}

// ReadF64LE reads a little-endian float64 bit pattern.
func (r *Reader) ReadF64LE() (float64, Code) {
	v, c := r.readFixed64(binary.LittleEndian)
	return math.Float64frombits(v), c
}

// ReadF64BE reads a big-endian float64 bit pattern.
func (r *Reader) ReadF64BE() (float64, Code) {
	v, c := r.readFixed64(binary.BigEndian)
	return math.Float64frombits(v), c
}
