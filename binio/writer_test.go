package binio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferWriter(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want InitCode
	}{
		{name: "valid region", data: make([]byte, 16), want: InitOK},
		{name: "nil data", data: nil, want: InitNilData | InitLengthZero},
		{name: "zero length", data: []byte{}, want: InitLengthZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := NewBufferWriter(tt.data)
			assert.Equal(t, tt.want, c)
			if tt.want == InitOK {
				require.NotNil(t, w)
				assert.Equal(t, BackendBuffer, w.Kind())
				assert.Equal(t, int64(0), w.Position())
				assert.Equal(t, int64(len(tt.data)), w.Len())
			} else {
				assert.Nil(t, w)
			}
		})
	}
}

func TestNewFileWriter(t *testing.T) {
	w, c := NewFileWriter(nil)
	assert.Equal(t, InitInvalidFile, c)
	assert.Nil(t, w)

	f, err := os.CreateTemp(t.TempDir(), "writer")
	require.NoError(t, err)
	defer f.Close()

	w, c = NewFileWriter(f)
	require.Equal(t, InitOK, c)
	assert.Equal(t, BackendFile, w.Kind())
	assert.Equal(t, int64(0), w.Position())
}

func TestWriterBounds(t *testing.T) {
	buf := make([]byte, 4)
	w, c := NewBufferWriter(buf)
	require.Equal(t, InitOK, c)

	// Exact fill succeeds.
	assert.Equal(t, OK, w.WriteU32(0xAABBCCDD))
	assert.Equal(t, int64(4), w.Position())
	assert.Equal(t, int64(0), w.Remaining())

	// Full buffer: every further write fails and the cursor stays put.
	assert.Equal(t, End, w.WriteU8(1))
	assert.Equal(t, End, w.WriteBytes([]byte{1, 2}))
	assert.Equal(t, int64(4), w.Position())

	// A write that straddles the end fails without partial transfer.
	require.Equal(t, OK, w.Seek(2))
	before := append([]byte(nil), buf...)
	assert.Equal(t, End, w.WriteU32(0x11223344))
	assert.Equal(t, int64(2), w.Position())
	assert.Equal(t, before, buf)
}

func TestWriterNilChecksCompose(t *testing.T) {
	// A buffer writer whose region is gone reports both conditions at once.
	w := &Writer{kind: BackendBuffer}
	c := w.WriteU8(7)
	assert.True(t, c.Has(NilData))
	assert.True(t, c.Has(End))

	var nilW *Writer
	assert.Equal(t, NilHandle, nilW.WriteU8(7))
	assert.Equal(t, NilHandle, nilW.WriteBytes([]byte{1}))
	assert.Equal(t, NilHandle, nilW.Seek(0))
}

func TestWriterNilSlice(t *testing.T) {
	w, c := NewBufferWriter(make([]byte, 8))
	require.Equal(t, InitOK, c)
	assert.Equal(t, InvalidValue, w.WriteBytes(nil))
	assert.Equal(t, InvalidValue, w.WriteBytesReversed(nil))
	assert.Equal(t, int64(0), w.Position())
}

func TestWriteBytesReversed(t *testing.T) {
	buf := make([]byte, 4)
	w, c := NewBufferWriter(buf)
	require.Equal(t, InitOK, c)

	require.Equal(t, OK, w.WriteBytesReversed([]byte{1, 2, 3, 4}))
	assert.Equal(t, []byte{4, 3, 2, 1}, buf)
}

func TestWriteBytesReversedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rev.bin")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, c := NewFileWriter(f)
	require.Equal(t, InitOK, c)
	// Longer than the scratch buffer to exercise the allocating path.
	require.Equal(t, OK, w.WriteBytesReversed([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	require.NoError(t, f.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, got)
}

func TestWriterSeek(t *testing.T) {
	buf := make([]byte, 8)
	w, c := NewBufferWriter(buf)
	require.Equal(t, InitOK, c)

	tests := []struct {
		name string
		pos  int64
		want Code
	}{
		{name: "start", pos: 0, want: OK},
		{name: "interior", pos: 5, want: OK},
		{name: "last byte", pos: 7, want: OK},
		{name: "at end", pos: 8, want: End},
		{name: "past end", pos: 9, want: End},
		{name: "negative", pos: -1, want: End},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Seek(tt.pos)
			assert.Equal(t, tt.want, got)
			if tt.want == OK {
				assert.Equal(t, tt.pos, w.Position())
			}
		})
	}
}

func TestWriterFileLenRestoresPosition(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "len")
	require.NoError(t, err)
	defer f.Close()

	w, c := NewFileWriter(f)
	require.Equal(t, InitOK, c)
	require.Equal(t, OK, w.WriteU64(1))
	require.Equal(t, OK, w.WriteU32LE(2))

	assert.Equal(t, int64(12), w.Len())
	assert.Equal(t, int64(12), w.Position())
	assert.Equal(t, int64(0), w.Remaining())

	require.Equal(t, OK, w.Seek(4))
	assert.Equal(t, int64(12), w.Len())
	assert.Equal(t, int64(4), w.Position())
	assert.Equal(t, int64(8), w.Remaining())
}
