package binio

import (
	"io"
	"os"
)

// Reader performs positioned, typed reads from one backend. The zero value
// is not usable; construct with NewBufferReader or NewFileReader. A Reader
// is not safe for concurrent use, and two Readers over the same file handle
// share that handle's stream position.
type Reader struct {
	kind BackendKind

	// buffer backend
	data []byte
	pos  int

	// file backend
	file *os.File

	scratch [8]byte
}

// NewBufferReader returns a Reader over data with the cursor at offset 0.
func NewBufferReader(data []byte) (*Reader, InitCode) {
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
	return &Reader{kind: BackendBuffer, data: data}, InitOK
}

// NewFileReader returns a Reader over an open file. The Reader's cursor is
// the stream's own position; the file stays owned by the caller and is
// never closed by this package.
func NewFileReader(f *os.File) (*Reader, InitCode) {
	if safetyChecks && f == nil {
		return nil, InitInvalidFile
	}
	return &Reader{kind: BackendFile, file: f}, InitOK
}

// Kind reports which backend the Reader is bound to.
func (r *Reader) Kind() BackendKind { return r.kind }

// check validates a pending n-byte read. Every failing condition is OR'd
// into the returned code; OK means the transfer may proceed. check never
// mutates the Reader.
func (r *Reader) check(n int) Code {
	if r == nil {
		return NilHandle
	}
	c := OK
	switch r.kind {
	case BackendBuffer:
		if r.data == nil {
			c |= NilData
		}
		if r.pos+n > len(r.data) {
			c |= End
		}
	case BackendFile:
		if r.file == nil {
			c |= NilData
		}
	}
	return c
}

// transfer copies len(p) bytes from the backend at the cursor into p and
// advances the cursor. It is the single choke point every read funnels
// through; validity is the caller's problem.
func (r *Reader) transfer(p []byte) Code {
	if r.kind == BackendBuffer {
		copy(p, r.data[r.pos:r.pos+len(p)])
		r.pos += len(p)
		return OK
	}
	if _, err := io.ReadFull(r.file, p); err != nil {
		// A short read leaves the stream position wherever the OS put it;
		// callers that need to recover must Seek.
		return End
	}
	return OK
}

// fill reads n bytes into the scratch buffer after running the safety
// check. Typed accessors decode out of scratch so reads never allocate.
func (r *Reader) fill(n int) Code {
	if safetyChecks {
		if c := r.check(n); c != OK {
			return c
		}
	}
	return r.transfer(r.scratch[:n])
}

// ReadBytes fills p with the next len(p) bytes.
func (r *Reader) ReadBytes(p []byte) Code {
	if safetyChecks {
		c := r.check(len(p))
		if p == nil {
			c |= InvalidValue
		}
		if c != OK {
			return c
		}
	}
	return r.transfer(p)
}

// ReadBytesReversed fills p with the next len(p) bytes in reverse order:
// the last byte read lands in p[0].
func (r *Reader) ReadBytesReversed(p []byte) Code {
	if safetyChecks {
		c := r.check(len(p))
		if p == nil {
			c |= InvalidValue
		}
		if c != OK {
			return c
		}
	}
	if c := r.transfer(p); c != OK {
		return c
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return OK
}

// Seek moves the cursor to an absolute offset. For the buffer backend a
// target at or past the end fails with End and leaves the cursor alone;
// for the file backend a rejected seek yields SeekFailed. Bounds are
// enforced even with safety checks compiled out.
func (r *Reader) Seek(pos int64) Code {
	if safetyChecks && r == nil {
		return NilHandle
	}
	if r.kind == BackendBuffer {
		if pos < 0 || pos >= int64(len(r.data)) {
			return End
		}
		r.pos = int(pos)
		return OK
	}
	if _, err := r.file.Seek(pos, io.SeekStart); err != nil {
		return SeekFailed
	}
	return OK
}

// Position returns the cursor offset. For the file backend this asks the
// stream, and returns -1 when the position cannot be determined.
func (r *Reader) Position() int64 {
	if r.kind == BackendBuffer {
		return int64(r.pos)
	}
	pos, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Len returns the backend length in bytes. For the file backend this seeks
// to the end and back, so it must not race other users of the same handle;
// it returns -1 when any of the seeks fail.
func (r *Reader) Len() int64 {
	if r.kind == BackendBuffer {
		return int64(len(r.data))
	}
	pos, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := r.file.Seek(pos, io.SeekStart); err != nil {
		return -1
	}
	return end
}

// Remaining returns how many bytes are left between the cursor and the
// end, or -1 when the file backend cannot be queried.
func (r *Reader) Remaining() int64 {
	if r.kind == BackendBuffer {
		return int64(len(r.data) - r.pos)
	}
	pos := r.Position()
	length := r.Len()
	if pos < 0 || length < 0 {
		return -1
	}
	return length - pos
}
