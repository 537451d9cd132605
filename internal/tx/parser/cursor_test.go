package parser

import (
	"errors"
	"testing"
)

func Test_cursor_readCompactSize(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    uint64
		wantErr bool
	}{
		{
			name: "single byte literal",
			data: []byte{0x42},
			want: 0x42,
		},
		{
			name: "two byte form",
			data: []byte{0xfd, 0x00, 0x01},
			want: 256,
		},
		{
			name: "four byte form",
			data: []byte{0xfe, 0x00, 0x00, 0x01, 0x00},
			want: 65536,
		},
		{
			name: "eight byte form",
			data: []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00},
			want: 1 << 32,
		},
		{
			name: "non-minimal encoding accepted",
			data: []byte{0xfd, 0x05, 0x00},
			want: 5,
		},
		{
			name:    "empty buffer",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "truncated payload",
			data:    []byte{0xfd, 0x01},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newCursor(tt.data).readCompactSize()
			if (err != nil) != tt.wantErr {
				t.Errorf("readCompactSize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("readCompactSize() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_cursor_fixedWidthReads(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})

	u8, err := c.readUint8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("readUint8() = %v, %v", u8, err)
	}
	u16, err := c.readUint16()
	if err != nil || u16 != 0x0302 {
		t.Fatalf("readUint16() = %#x, %v", u16, err)
	}
	u32, err := c.readUint32()
	if err != nil || u32 != 0x07060504 {
		t.Fatalf("readUint32() = %#x, %v", u32, err)
	}
}

func Test_cursor_readInt32(t *testing.T) {
	c := newCursor([]byte{0xff, 0xff, 0xff, 0xff})
	v, err := c.readInt32()
	if err != nil {
		t.Fatalf("readInt32() error = %v", err)
	}
	if v != -1 {
		t.Errorf("readInt32() = %d, want -1", v)
	}
}

func Test_cursor_readHash_displaysReversed(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i + 1)
	}
	hash, err := newCursor(data).readHash()
	if err != nil {
		t.Fatalf("readHash() error = %v", err)
	}
	want := "201f1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201"
	if hash.String() != want {
		t.Errorf("readHash() = %s, want %s", hash.String(), want)
	}
}

func Test_cursor_eofReportsPositionAndExpected(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02})
	if _, err := c.readUint8(); err != nil {
		t.Fatalf("readUint8() error = %v", err)
	}

	_, err := c.readUint64()
	var eof *UnexpectedEOFError
	if !errors.As(err, &eof) {
		t.Fatalf("expected UnexpectedEOFError, got %v", err)
	}
	if eof.Position != 1 || eof.Expected != 8 {
		t.Errorf("eof = position %d expected %d, want position 1 expected 8", eof.Position, eof.Expected)
	}
}

func Test_cursor_readBytes(t *testing.T) {
	c := newCursor([]byte{0xaa, 0xbb, 0xcc})
	got, err := c.readBytes(2)
	if err != nil {
		t.Fatalf("readBytes() error = %v", err)
	}
	if got[0] != 0xaa || got[1] != 0xbb {
		t.Errorf("readBytes() = %x", got)
	}
	if _, err := c.readBytes(2); err == nil {
		t.Error("expected error reading past end")
	}
}
