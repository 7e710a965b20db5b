package binio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferReader(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want InitCode
	}{
		{name: "valid region", data: []byte{1, 2, 3}, want: InitOK},
		{name: "nil data", data: nil, want: InitNilData | InitLengthZero},
		{name: "zero length", data: []byte{}, want: InitLengthZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := NewBufferReader(tt.data)
			assert.Equal(t, tt.want, c)
			if tt.want == InitOK {
				require.NotNil(t, r)
				assert.Equal(t, BackendBuffer, r.Kind())
				assert.Equal(t, int64(len(tt.data)), r.Len())
			} else {
				assert.Nil(t, r)
			}
		})
	}
}

func TestNewFileReader(t *testing.T) {
	r, c := NewFileReader(nil)
	assert.Equal(t, InitInvalidFile, c)
	assert.Nil(t, r)
}

func TestReaderBounds(t *testing.T) {
	r, c := NewBufferReader([]byte{0x11, 0x22, 0x33, 0x44})
	require.Equal(t, InitOK, c)

	// Reading past the end fails and the cursor stays put.
	_, got := r.ReadU64()
	assert.Equal(t, End, got)
	assert.Equal(t, int64(0), r.Position())

	// Exact drain succeeds.
	v, got := r.ReadU32LE()
	assert.Equal(t, OK, got)
	assert.Equal(t, uint32(0x44332211), v)
	assert.Equal(t, int64(0), r.Remaining())

	_, got = r.ReadU8()
	assert.Equal(t, End, got)
}

func TestReaderNilChecksCompose(t *testing.T) {
	r := &Reader{kind: BackendBuffer}
	_, c := r.ReadU8()
	assert.True(t, c.Has(NilData))
	assert.True(t, c.Has(End))

	var nilR *Reader
	_, c = nilR.ReadU8()
	assert.Equal(t, NilHandle, c)
	assert.Equal(t, NilHandle, nilR.ReadBytes([]byte{0}))
	assert.Equal(t, NilHandle, nilR.Seek(0))
}

func TestReadBytes(t *testing.T) {
	r, c := NewBufferReader([]byte{1, 2, 3, 4, 5})
	require.Equal(t, InitOK, c)

	assert.Equal(t, InvalidValue, r.ReadBytes(nil))

	got := make([]byte, 3)
	require.Equal(t, OK, r.ReadBytes(got))
	assert.Equal(t, []byte{1, 2, 3}, got)

	rev := make([]byte, 2)
	require.Equal(t, OK, r.ReadBytesReversed(rev))
	assert.Equal(t, []byte{5, 4}, rev)
	assert.Equal(t, int64(0), r.Remaining())
}

func TestReaderSeek(t *testing.T) {
	r, c := NewBufferReader([]byte{10, 20, 30, 40})
	require.Equal(t, InitOK, c)

	require.Equal(t, OK, r.Seek(2))
	v, got := r.ReadU8()
	assert.Equal(t, OK, got)
	assert.Equal(t, uint8(30), v)

	assert.Equal(t, End, r.Seek(4))
	assert.Equal(t, End, r.Seek(-1))
	assert.Equal(t, int64(3), r.Position())
}

func TestReaderFileShortRead(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "short")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	r, c := NewFileReader(f)
	require.Equal(t, InitOK, c)
	assert.Equal(t, int64(3), r.Len())

	_, got := r.ReadU32()
	assert.Equal(t, End, got)
}
