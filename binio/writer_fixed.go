package binio

import (
	"encoding/binary"
	"math"
)

// Fixed-width typed writes. Each accessor encodes the value into the
// scratch buffer in the requested byte order and hands it to the transfer
// choke point, so buffer and file backends behave identically. The plain
// form writes host byte order; the LE/BE forms write the named order on
// any host.

func (w *Writer) writeFixed16(v uint16, order binary.ByteOrder) Code {
	if safetyChecks {
		if c := w.check(2); c != OK {
			return c
		}
	}
	order.PutUint16(w.scratch[:2], v)
	return w.transfer(w.scratch[:2])
}

func (w *Writer) writeFixed32(v uint32, order binary.ByteOrder) Code {
	if safetyChecks {
		if c := w.check(4); c != OK {
			return c
		}
	}
	order.PutUint32(w.scratch[:4], v)
	return w.transfer(w.scratch[:4])
}

func (w *Writer) writeFixed64(v uint64, order binary.ByteOrder) Code {
	if safetyChecks {
		if c := w.check(8); c != OK {
			return c
		}
	}
	order.PutUint64(w.scratch[:8], v)
	return w.transfer(w.scratch[:8])
}

// WriteU8 writes v as a single byte.
func (w *Writer) WriteU8(v uint8) Code {
	if safetyChecks {
		if c := w.check(1); c != OK {
			return c
		}
	}
	w.scratch[0] = v
	return w.transfer(w.scratch[:1])
}

// WriteU8LE writes v as a single byte; order is irrelevant at this width.
func (w *Writer) WriteU8LE(v uint8) Code { return w.WriteU8(v) }

// WriteU8BE writes v as a single byte; order is irrelevant at this width.
func (w *Writer) WriteU8BE(v uint8) Code { return w.WriteU8(v) }

// WriteU16 writes v in host byte order.
func (w *Writer) WriteU16(v uint16) Code { return w.writeFixed16(v, binary.NativeEndian) }

// WriteU16LE writes v in little-endian order.
func (w *Writer) WriteU16LE(v uint16) Code { return w.writeFixed16(v, binary.LittleEndian) }

// WriteU16BE writes v in big-endian order.
func (w *Writer) WriteU16BE(v uint16) Code { return w.writeFixed16(v, binary.BigEndian) }

// WriteU32 writes v in host byte order.
func (w *Writer) WriteU32(v uint32) Code { return w.writeFixed32(v, binary.NativeEndian) }

// WriteU32LE writes v in little-endian order.
func (w *Writer) WriteU32LE(v uint32) Code { return w.writeFixed32(v, binary.LittleEndian) }

// WriteU32BE writes v in big-endian order.
func (w *Writer) WriteU32BE(v uint32) Code { return w.writeFixed32(v, binary.BigEndian) }

// WriteU64 writes v in host byte order.
func (w *Writer) WriteU64(v uint64) Code { return w.writeFixed64(v, binary.NativeEndian) }

// WriteU64LE writes v in little-endian order.
func (w *Writer) WriteU64LE(v uint64) Code { return w.writeFixed64(v, binary.LittleEndian) }

// WriteU64BE writes v in big-endian order.
func (w *Writer) WriteU64BE(v uint64) Code { return w.writeFixed64(v, binary.BigEndian) }

// WriteI8 writes v as a single byte.
func (w *Writer) WriteI8(v int8) Code { return w.WriteU8(uint8(v)) }

// WriteI8LE writes v as a single byte; order is irrelevant at this width.
func (w *Writer) WriteI8LE(v int8) Code { return w.WriteU8(uint8(v)) }

// WriteI8BE writes v as a single byte; order is irrelevant at this width.
func (w *Writer) WriteI8BE(v int8) Code { return w.WriteU8(uint8(v)) }

// WriteI16 writes v in host byte order.
func (w *Writer) WriteI16(v int16) Code { return w.writeFixed16(uint16(v), binary.NativeEndian) }

// WriteI16LE writes v in little-endian order.
func (w *Writer) WriteI16LE(v int16) Code { return w.writeFixed16(uint16(v), binary.LittleEndian) }

// WriteI16BE writes v in big-endian order.
func (w *Writer) WriteI16BE(v int16) Code { return w.writeFixed16(uint16(v), binary.BigEndian) }

// WriteI32 writes v in host byte order.
func (w *Writer) WriteI32(v int32) Code { return w.writeFixed32(uint32(v), binary.NativeEndian) }

// WriteI32LE writes v in little-endian order.
func (w *Writer) WriteI32LE(v int32) Code { return w.writeFixed32(uint32(v), binary.LittleEndian) }

// WriteI32BE writes v in big-endian order.
func (w *Writer) WriteI32BE(v int32) Code { return w.writeFixed32(uint32(v), binary.BigEndian) }

// WriteI64 writes v in host byte order.
func (w *Writer) WriteI64(v int64) Code { return w.writeFixed64(uint64(v), binary.NativeEndian) }

// WriteI64LE writes v in little-endian order.
func (w *Writer) WriteI64LE(v int64) Code { return w.writeFixed64(uint64(v), binary.LittleEndian) }

// WriteI64BE writes v in big-endian order.
func (w *Writer) WriteI64BE(v int64) Code { return w.writeFixed64(uint64(v), binary.BigEndian) }

// WriteF32 writes v's IEEE-754 bit pattern in host byte order. The bits
// are copied verbatim, so NaN payloads and signed zeros survive.
func (w *Writer) WriteF32(v float32) Code {
	return w.writeFixed32(math.Float32bits(v), binary.NativeEndian)
}

// WriteF32LE writes v's IEEE-754 bit pattern in little-endian order.
func (w *Writer) WriteF32LE(v float32) Code {
	return w.writeFixed32(math.Float32bits(v), binary.LittleEndian)
}

// WriteF32BE writes v's IEEE-754 bit pattern in big-endian order.
func (w *Writer) WriteF32BE(v float32) Code {
	return w.writeFixed32(math.Float32bits(v), binary.BigEndian)
}

// WriteF64 writes v's IEEE-754 bit pattern in host byte order.
func (w *Writer) WriteF64(v float64) Code {
	return w.writeFixed64(math.Float64bits(v), binary.NativeEndian)
}

// WriteF64LE writes v's IEEE-754 bit pattern in little-endian order.
func (w *Writer) WriteF64LE(v float64) Code {
	return w.writeFixed64(math.Float64bits(v), binary.LittleEndian)
}

// WriteF64BE writes v's IEEE-754 bit pattern in big-endian order.
func (w *Writer) WriteF64BE(v float64) Code {
	return w.writeFixed64(math.Float64bits(v), binary.BigEndian)
}
