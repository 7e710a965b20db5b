package binio

import (
	"encoding/binary"
	"math"
)

// Normalized typed writes. A float in [0,1] (unsigned) or [-1,1] (signed)
// is scaled to the full range of the target integer width, rounded half-up
// by adding 0.5 and truncating toward zero, and written as a fixed-width
// integer. Widths up to 16 bits scale in float32; 32- and 64-bit widths
// scale in float64, because the product magnitude outgrows a float32
// mantissa.
//
// A value outside its domain is still encoded and written; the returned
// code carries InvalidValue so the caller can reject it. The bit pattern
// written for an out-of-domain value is unspecified when the scaled result
// overflows the target width.

// writeNorm commits an already-scaled normalized value. Domain violations
// flag the code without blocking the transfer; every other failing check
// does block it.
func (w *Writer) writeNorm(bits uint64, n int, order binary.ByteOrder, inDomain bool) Code {
	var c Code
	if safetyChecks {
		c = w.check(n)
		if !inDomain {
			c |= InvalidValue
		}
		if c&^InvalidValue != OK {
			return c
		}
	}
	switch n {
	case 1:
		w.scratch[0] = byte(bits)
	case 2:
		order.PutUint16(w.scratch[:2], uint16(bits))
	case 4:
		order.PutUint32(w.scratch[:4], uint32(bits))
	default:
		order.PutUint64(w.scratch[:8], bits)
	}
	if tc := w.transfer(w.scratch[:n]); tc != OK {
		return tc | c
	}
	return c
}

// WriteNU8 encodes v in [0,1] as an unsigned 8-bit normalized integer.
func (w *Writer) WriteNU8(v float32) Code {
	return w.writeNorm(uint64(uint8(v*math.MaxUint8+0.5)), 1, binary.NativeEndian, v >= 0 && v <= 1)
}

// WriteNU8LE is WriteNU8; order is irrelevant at this width.
func (w *Writer) WriteNU8LE(v float32) Code { return w.WriteNU8(v) }

// WriteNU8BE is WriteNU8; order is irrelevant at this width.
func (w *Writer) WriteNU8BE(v float32) Code { return w.WriteNU8(v) }

// WriteNU16 encodes v in [0,1] as an unsigned 16-bit normalized integer in
// host byte order.
func (w *Writer) WriteNU16(v float32) Code {
	return w.writeNorm(uint64(uint16(v*math.MaxUint16+0.5)), 2, binary.NativeEndian, v >= 0 && v <= 1)
}

// WriteNU16LE is WriteNU16 in little-endian order.
func (w *Writer) WriteNU16LE(v float32) Code {
	return w.writeNorm(uint64(uint16(v*math.MaxUint16+0.5)), 2, binary.LittleEndian, v >= 0 && v <= 1)
}

// WriteNU16BE is WriteNU16 in big-endian order.
func (w *Writer) WriteNU16BE(v float32) Code {
	return w.writeNorm(uint64(uint16(v*math.MaxUint16+0.5)), 2, binary.BigEndian, v >= 0 && v <= 1)
}

// WriteNU32 encodes v in [0,1] as an unsigned 32-bit normalized integer in
// host byte order.
func (w *Writer) WriteNU32(v float64) Code {
	return w.writeNorm(uint64(uint32(v*math.MaxUint32+0.5)), 4, binary.NativeEndian, v >= 0 && v <= 1)
}

// WriteNU32LE is WriteNU32 in little-endian order.
func (w *Writer) WriteNU32LE(v float64) Code {
	return w.writeNorm(uint64(uint32(v*math.MaxUint32+0.5)), 4, binary.LittleEndian, v >= 0 && v <= 1)
}

// WriteNU32BE is WriteNU32 in big-endian order.
func (w *Writer) WriteNU32BE(v float64) Code {
	return w.writeNorm(uint64(uint32(v*math.MaxUint32+0.5)), 4, binary.BigEndian, v >= 0 && v <= 1)
}

// WriteNU64 encodes v in [0,1] as an unsigned 64-bit normalized integer in
// host byte order. v == 1.0 scales past the largest uint64 and the result
// of the conversion is unspecified; stay strictly below 1 at this width.
func (w *Writer) WriteNU64(v float64) Code {
	return w.writeNorm(uint64(v*math.MaxUint64+0.5), 8, binary.NativeEndian, v >= 0 && v <= 1)
}

// WriteNU64LE is WriteNU64 in little-endian order.
func (w *Writer) WriteNU64LE(v float64) Code {
	return w.writeNorm(uint64(v*math.MaxUint64+0.5), 8, binary.LittleEndian, v >= 0 && v <= 1)
}

// WriteNU64BE is WriteNU64 in big-endian order.
func (w *Writer) WriteNU64BE(v float64) Code {
	return w.writeNorm(uint64(v*math.MaxUint64+0.5), 8, binary.BigEndian, v >= 0 && v <= 1)
}

// WriteNI8 encodes v in [-1,1] as a signed 8-bit normalized integer.
func (w *Writer) WriteNI8(v float32) Code {
	return w.writeNorm(uint64(uint8(int8(v*math.MaxInt8+0.5))), 1, binary.NativeEndian, v >= -1 && v <= 1)
}

// WriteNI8LE is WriteNI8; order is irrelevant at this width.
func (w *Writer) WriteNI8LE(v float32) Code { return w.WriteNI8(v) }

// WriteNI8BE is WriteNI8; order is irrelevant at this width.
func (w *Writer) WriteNI8BE(v float32) Code { return w.WriteNI8(v) }

// WriteNI16 encodes v in [-1,1] as a signed 16-bit normalized integer in
// host byte order.
func (w *Writer) WriteNI16(v float32) Code {
	return w.writeNorm(uint64(uint16(int16(v*math.MaxInt16+0.5))), 2, binary.NativeEndian, v >= -1 && v <= 1)
}

// WriteNI16LE is WriteNI16 in little-endian order.
func (w *Writer) WriteNI16LE(v float32) Code {
	return w.writeNorm(uint64(uint16(int16(v*math.MaxInt16+0.5))), 2, binary.LittleEndian, v >= -1 && v <= 1)
}

// WriteNI16BE is WriteNI16 in big-endian order.
func (w *Writer) WriteNI16BE(v float32) Code {
	return w.writeNorm(uint64(uint16(int16(v*math.MaxInt16+0.5))), 2, binary.BigEndian, v >= -1 && v <= 1)
}

// WriteNI32 encodes v in [-1,1] as a signed 32-bit normalized integer in
// host byte order.
func (w *Writer) WriteNI32(v float64) Code {
	return w.writeNorm(uint64(uint32(int32(v*math.MaxInt32+0.5))), 4, binary.NativeEndian, v >= -1 && v <= 1)
}

// WriteNI32LE is WriteNI32 in little-endian order.
func (w *Writer) WriteNI32LE(v float64) Code {
	return w.writeNorm(uint64(uint32(int32(v*math.MaxInt32+0.5))), 4, binary.LittleEndian, v >= -1 && v <= 1)
}

// WriteNI32BE is WriteNI32 in big-endian order.
func (w *Writer) WriteNI32BE(v float64) Code {
	return w.writeNorm(uint64(uint32(int32(v*math.MaxInt32+0.5))), 4, binary.BigEndian, v >= -1 && v <= 1)
}

// WriteNI64 encodes v in [-1,1] as a signed 64-bit normalized integer in
// host byte order. v == 1.0 scales past the largest int64 and the result
// of the conversion is unspecified; stay strictly below 1 at this width.
func (w *Writer) WriteNI64(v float64) Code {
	return w.writeNorm(uint64(int64(v*math.MaxInt64+0.5)), 8, binary.NativeEndian, v >= -1 && v <= 1)
}

// WriteNI64LE is WriteNI64 in little-endian order.
func (w *Writer) WriteNI64LE(v float64) Code {
	return w.writeNorm(uint64(int64(v*math.MaxInt64+0.5)), 8, binary.LittleEndian, v >= -1 && v <= 1)
}

// WriteNI64BE is WriteNI64 in big-endian order.
func (w *Writer) WriteNI64BE(v float64) Code {
	return w.writeNorm(uint64(int64(v*math.MaxInt64+0.5)), 8, binary.BigEndian, v >= -1 && v <= 1)
}
