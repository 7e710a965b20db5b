package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowbyte/binio-go/binio"
)

func TestSplitSpec(t *testing.T) {
	tests := []struct {
		spec      string
		wantBase  string
		wantOrder byteOrder
	}{
		{spec: "u32", wantBase: "u32", wantOrder: orderHost},
		{spec: "u32le", wantBase: "u32", wantOrder: orderLE},
		{spec: "u32be", wantBase: "u32", wantOrder: orderBE},
		{spec: "NI16BE", wantBase: "ni16", wantOrder: orderBE},
		{spec: "f64", wantBase: "f64", wantOrder: orderHost},
		{spec: "nu8le", wantBase: "nu8", wantOrder: orderLE},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			base, order := splitSpec(tt.spec)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestWriteReadValue(t *testing.T) {
	tests := []struct {
		spec    string
		literal string
		want    string
	}{
		{spec: "u8", literal: "255", want: "255"},
		{spec: "u16le", literal: "4660", want: "4660"},
		{spec: "u32be", literal: "0xDEADBEEF", want: "3735928559"},
		{spec: "u64", literal: "18446744073709551615", want: "18446744073709551615"},
		{spec: "i8", literal: "-128", want: "-128"},
		{spec: "i16be", literal: "-2", want: "-2"},
		{spec: "i32le", literal: "305419896", want: "305419896"},
		{spec: "i64", literal: "-9223372036854775808", want: "-9223372036854775808"},
		{spec: "f32", literal: "1.5", want: "1.5"},
		{spec: "f64be", literal: "-2.25", want: "-2.25"},
		{spec: "nu8", literal: "0.2", want: "0.2"},
		{spec: "ni16le", literal: "0", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.spec+":"+tt.literal, func(t *testing.T) {
			buf := make([]byte, 16)
			w, ic := binio.NewBufferWriter(buf)
			require.Equal(t, binio.InitOK, ic)
			require.NoError(t, writeValue(w, tt.spec, tt.literal))

			r, ic := binio.NewBufferReader(buf)
			require.Equal(t, binio.InitOK, ic)
			got, err := readValue(r, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteValueErrors(t *testing.T) {
	buf := make([]byte, 2)
	w, ic := binio.NewBufferWriter(buf)
	require.Equal(t, binio.InitOK, ic)

	assert.Error(t, writeValue(w, "u99", "1"))
	assert.Error(t, writeValue(w, "u8", "not a number"))
	assert.Error(t, writeValue(w, "u8", "256"))
	assert.Error(t, writeValue(w, "i8", "128"))
	// Buffer too small for the width.
	assert.Error(t, writeValue(w, "u32", "1"))
	// Out-of-domain normalized value surfaces the flagged code.
	assert.Error(t, writeValue(w, "nu8", "1.5"))
}

func TestReadValueErrors(t *testing.T) {
	r, ic := binio.NewBufferReader([]byte{1, 2})
	require.Equal(t, binio.InitOK, ic)

	_, err := readValue(r, "bogus")
	assert.Error(t, err)
	_, err = readValue(r, "u64")
	assert.Error(t, err)
}
