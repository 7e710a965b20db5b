package binio

import (
	"io"
	"os"
)

// Writer performs positioned, typed writes to one backend. The zero value
// is not usable; construct with NewBufferWriter or NewFileWriter. A Writer
// is not safe for concurrent use, and two Writers over the same file handle
// share that handle's stream position.
type Writer struct {
	kind BackendKind

	// buffer backend
	data []byte
	pos  int

	// file backend
	file *os.File

	// scratch holds one value while it is encoded, so typed writes never
	// allocate.
	scratch [8]byte
}

// NewBufferWriter returns a Writer over data with the cursor at offset 0.
// The writable region is exactly data; it never grows.
func NewBufferWriter(data []byte) (*Writer, InitCode) {
	if safetyChecks {
		c := InitOK
		if data == nil {
			c |= InitNilData
		}
		if len(data) == 0 {
			c |= InitLengthZero
		}
		if c != InitOK {
			return nil, c
		}
	}
	return &Writer{kind: BackendBuffer, data: data}, InitOK
}

// NewFileWriter returns a Writer over an open file. The Writer's cursor is
// the stream's own position; the file stays owned by the caller and is
// never closed by this package.
func NewFileWriter(f *os.File) (*Writer, InitCode) {
	if safetyChecks && f == nil {
		return nil, InitInvalidFile
	}
	return &Writer{kind: BackendFile, file: f}, InitOK
}

// Kind reports which backend the Writer is bound to.
func (w *Writer) Kind() BackendKind { return w.kind }

// check validates a pending n-byte write. Every failing condition is OR'd
// into the returned code; OK means the transfer may proceed. check never
// mutates the Writer.
func (w *Writer) check(n int) Code {
	if w == nil {
		return NilHandle
	}
	c := OK
	switch w.kind {
	case BackendBuffer:
		if w.data == nil {
			c |= NilData
		}
		if w.pos+n > len(w.data) {
			c |= End
		}
	case BackendFile:
		if w.file == nil {
			c |= NilData
		}
	}
	return c
}

// transfer copies p into the backend at the cursor and advances it. It is
// the single choke point every write funnels through. Bounds and handle
// validity are the caller's problem: either check already passed or safety
// checks are compiled out.
func (w *Writer) transfer(p []byte) Code {
	if w.kind == BackendBuffer {
		copy(w.data[w.pos:w.pos+len(p)], p)
		w.pos += len(p)
		return OK
	}
	n, err := w.file.Write(p)
	if err != nil || n != len(p) {
		// A short write leaves the stream position wherever the OS put it;
		// callers that need to recover must Seek.
		return End
	}
	return OK
}

// WriteBytes writes p verbatim at the cursor.
func (w *Writer) WriteBytes(p []byte) Code {
	if safetyChecks {
		c := w.check(len(p))
		if p == nil {
			c |= InvalidValue
		}
		if c != OK {
			return c
		}
	}
	return w.transfer(p)
}

// WriteBytesReversed writes p with its bytes in reverse order. The reversal
// is staged in memory first, so the file backend still sees a single write
// call.
func (w *Writer) WriteBytesReversed(p []byte) Code {
	if safetyChecks {
		c := w.check(len(p))
		if p == nil {
			c |= InvalidValue
		}
		if c != OK {
			return c
		}
	}
	n := len(p)
	if w.kind == BackendBuffer {
		dst := w.data[w.pos : w.pos+n]
		for i := range dst {
			dst[i] = p[n-1-i]
		}
		w.pos += n
		return OK
	}
	rev := w.scratch[:0]
	if n > len(w.scratch) {
		rev = make([]byte, 0, n)
	}
	for i := n - 1; i >= 0; i-- {
		rev = append(rev, p[i])
	}
	return w.transfer(rev)
}

// Seek moves the cursor to an absolute offset. For the buffer backend a
// target at or past the end fails with End and leaves the cursor alone;
// for the file backend a rejected seek yields SeekFailed. Bounds are
// enforced even with safety checks compiled out.
func (w *Writer) Seek(pos int64) Code {
	if safetyChecks && w == nil {
		return NilHandle
	}
	if w.kind == BackendBuffer {
		if pos < 0 || pos >= int64(len(w.data)) {
			return End
		}
		w.pos = int(pos)
		return OK
	}
	if _, err := w.file.Seek(pos, io.SeekStart); err != nil {
		return SeekFailed
	}
	return OK
}

// Position returns the cursor offset. For the file backend this asks the
// stream, and returns -1 when the position cannot be determined.
func (w *Writer) Position() int64 {
	if w.kind == BackendBuffer {
		return int64(w.pos)
	}
	pos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Len returns the backend length in bytes. For the file backend this seeks
// to the end and back, so it must not race other users of the same handle;
// it returns -1 when any of the seeks fail.
func (w *Writer) Len() int64 {
	if w.kind == BackendBuffer {
		return int64(len(w.data))
	}
	pos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := w.file.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := w.file.Seek(pos, io.SeekStart); err != nil {
		return -1
	}
	return end
}

// Remaining returns how many bytes fit between the cursor and the end, or
// -1 when the file backend cannot be queried.
func (w *Writer) Remaining() int64 {
	if w.kind == BackendBuffer {
		return int64(len(w.data) - w.pos)
	}
	pos := w.Position()
	length := w.Len()
	if pos < 0 || length < 0 {
		return -1
	}
	return length - pos
}
