package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lowbyte/binio-go/binio"
)

// byteOrder selects among the three variants of one accessor family.
type byteOrder int

const (
	orderHost byteOrder = iota
	orderLE
	orderBE
)

// splitSpec separates the optional le/be suffix from the base type name of
// a value spec like "u32le" or "ni16".
func splitSpec(spec string) (string, byteOrder) {
	spec = strings.ToLower(spec)
	switch {
	case strings.HasSuffix(spec, "le"):
		return strings.TrimSuffix(spec, "le"), orderLE
	case strings.HasSuffix(spec, "be"):
		return strings.TrimSuffix(spec, "be"), orderBE
	default:
		return spec, orderHost
	}
}

// pick returns the accessor matching the requested byte order.
func pick[T any](order byteOrder, host, le, be T) T {
	switch order {
	case orderLE:
		return le
	case orderBE:
		return be
	default:
		return host
	}
}

// writeValue parses literal according to spec and writes it with the
// matching typed accessor.
func writeValue(w *binio.Writer, spec, literal string) error {
	base, order := splitSpec(spec)
	switch base {
	case "u8", "u16", "u32", "u64":
		bits, _ := strconv.Atoi(base[1:])
		v, err := strconv.ParseUint(literal, 0, bits)
		if err != nil {
			return err
		}
		switch base {
		case "u8":
			return pick(order, w.WriteU8, w.WriteU8LE, w.WriteU8BE)(uint8(v)).Err()
		case "u16":
			return pick(order, w.WriteU16, w.WriteU16LE, w.WriteU16BE)(uint16(v)).Err()
		case "u32":
			return pick(order, w.WriteU32, w.WriteU32LE, w.WriteU32BE)(uint32(v)).Err()
		default:
			return pick(order, w.WriteU64, w.WriteU64LE, w.WriteU64BE)(v).Err()
		}
	case "i8", "i16", "i32", "i64":
		bits, _ := strconv.Atoi(base[1:])
		v, err := strconv.ParseInt(literal, 0, bits)
		if err != nil {
			return err
		}
		switch base {
		case "i8":
			return pick(order, w.WriteI8, w.WriteI8LE, w.WriteI8BE)(int8(v)).Err()
		case "i16":
			return pick(order, w.WriteI16, w.WriteI16LE, w.WriteI16BE)(int16(v)).Err()
		case "i32":
			return pick(order, w.WriteI32, w.WriteI32LE, w.WriteI32BE)(int32(v)).Err()
		default:
			return pick(order, w.WriteI64, w.WriteI64LE, w.WriteI64BE)(v).Err()
		}
	case "f32":
		v, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return err
		}
		return pick(order, w.WriteF32, w.WriteF32LE, w.WriteF32BE)(float32(v)).Err()
	case "f64":
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return err
		}
		return pick(order, w.WriteF64, w.WriteF64LE, w.WriteF64BE)(v).Err()
	case "nu8", "nu16", "ni8", "ni16":
		v, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return err
		}
		f := float32(v)
		switch base {
		case "nu8":
			return pick(order, w.WriteNU8, w.WriteNU8LE, w.WriteNU8BE)(f).Err()
		case "nu16":
			return pick(order, w.WriteNU16, w.WriteNU16LE, w.WriteNU16BE)(f).Err()
		case "ni8":
			return pick(order, w.WriteNI8, w.WriteNI8LE, w.WriteNI8BE)(f).Err()
		default:
			return pick(order, w.WriteNI16, w.WriteNI16LE, w.WriteNI16BE)(f).Err()
		}
	case "nu32", "nu64", "ni32", "ni64":
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return err
		}
		switch base {
		case "nu32":
			return pick(order, w.WriteNU32, w.WriteNU32LE, w.WriteNU32BE)(v).Err()
		case "nu64":
			return pick(order, w.WriteNU64, w.WriteNU64LE, w.WriteNU64BE)(v).Err()
		case "ni32":
			return pick(order, w.WriteNI32, w.WriteNI32LE, w.WriteNI32BE)(v).Err()
		default:
			return pick(order, w.WriteNI64, w.WriteNI64LE, w.WriteNI64BE)(v).Err()
		}
	default:
		return fmt.Errorf("unknown value spec %q", spec)
	}
}

// readValue reads one value according to spec and formats it for output.
func readValue(r *binio.Reader, spec string) (string, error) {
	base, order := splitSpec(spec)
	switch base {
	case "u8":
		v, c := pick(order, r.ReadU8, r.ReadU8LE, r.ReadU8BE)()
		return fmtUint(uint64(v), c)
	case "u16":
		v, c := pick(order, r.ReadU16, r.ReadU16LE, r.ReadU16BE)()
		return fmtUint(uint64(v), c)
	case "u32":
		v, c := pick(order, r.ReadU32, r.ReadU32LE, r.ReadU32BE)()
		return fmtUint(uint64(v), c)
	case "u64":
		v, c := pick(order, r.ReadU64, r.ReadU64LE, r.ReadU64BE)()
		return fmtUint(v, c)
	case "i8":
		v, c := pick(order, r.ReadI8, r.ReadI8LE, r.ReadI8BE)()
		return fmtInt(int64(v), c)
	case "i16":
		v, c := pick(order, r.ReadI16, r.ReadI16LE, r.ReadI16BE)()
		return fmtInt(int64(v), c)
	case "i32":
		v, c := pick(order, r.ReadI32, r.ReadI32LE, r.ReadI32BE)()
		return fmtInt(int64(v), c)
	case "i64":
		v, c := pick(order, r.ReadI64, r.ReadI64LE, r.ReadI64BE)()
		return fmtInt(v, c)
	case "f32":
		v, c := pick(order, r.ReadF32, r.ReadF32LE, r.ReadF32BE)()
		return fmtFloat(float64(v), 32, c)
	case "f64":
		v, c := pick(order, r.ReadF64, r.ReadF64LE, r.ReadF64BE)()
		return fmtFloat(v, 64, c)
	case "nu8":
		v, c := pick(order, r.ReadNU8, r.ReadNU8LE, r.ReadNU8BE)()
		return fmtFloat(float64(v), 32, c)
	case "nu16":
		v, c := pick(order, r.ReadNU16, r.ReadNU16LE, r.ReadNU16BE)()
		return fmtFloat(float64(v), 32, c)
	case "nu32":
		v, c := pick(order, r.ReadNU32, r.ReadNU32LE, r.ReadNU32BE)()
		return fmtFloat(v, 64, c)
	case "nu64":
		v, c := pick(order, r.ReadNU64, r.ReadNU64LE, r.ReadNU64BE)()
		return fmtFloat(v, 64, c)
	case "ni8":
		v, c := pick(order, r.ReadNI8, r.ReadNI8LE, r.ReadNI8BE)()
		return fmtFloat(float64(v), 32, c)
	case "ni16":
		v, c := pick(order, r.ReadNI16, r.ReadNI16LE, r.ReadNI16BE)()
		return fmtFloat(float64(v), 32, c)
	case "ni32":
		v, c := pick(order, r.ReadNI32, r.ReadNI32LE, r.ReadNI32BE)()
		return fmtFloat(v, 64, c)
	case "ni64":
		v, c := pick(order, r.ReadNI64, r.ReadNI64LE, r.ReadNI64BE)()
		return fmtFloat(v, 64, c)
	default:
		return "", fmt.Errorf("unknown value spec %q", spec)
	}
}

func fmtUint(v uint64, c binio.Code) (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	return strconv.FormatUint(v, 10), nil
}

func fmtInt(v int64, c binio.Code) (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

func fmtFloat(v float64, bits int, c binio.Code) (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'g', -1, bits), nil
}
