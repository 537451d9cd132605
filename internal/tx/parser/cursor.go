// Package parser decodes serialized Bitcoin transactions (legacy and
// segwit encodings) into the inspectable model.
package parser

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// cursor is a bounds-checked sequential reader over an immutable buffer.
// Every read validates the remaining length first; on error the position is
// unspecified and the caller must abort.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) position() int {
	return c.pos
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) require(n int) error {
	if c.pos+n > len(c.data) {
		return &UnexpectedEOFError{Position: c.pos, Expected: n}
	}
	return nil
}

func (c *cursor) readUint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) readInt32() (int32, error) {
	v, err := c.readUint32()
	return int32(v), err
}

func (c *cursor) readUint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.data[c.pos:])
	c.pos += 8
	return v, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.data[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// readHash reads a 32-byte hash in wire order. chainhash.Hash renders
// byte-reversed hex, matching the network's display convention.
func (c *cursor) readHash() (chainhash.Hash, error) {
	var hash chainhash.Hash
	if err := c.require(chainhash.HashSize); err != nil {
		return hash, err
	}
	copy(hash[:], c.data[c.pos:c.pos+chainhash.HashSize])
	c.pos += chainhash.HashSize
	return hash, nil
}

// readCompactSize decodes Bitcoin's variable-width unsigned integer:
// a literal byte below 0xfd, or 0xfd/0xfe/0xff followed by a 2/4/8-byte
// little-endian value. Non-minimal encodings are accepted on decode.
func (c *cursor) readCompactSize() (uint64, error) {
	first, err := c.readUint8()
	if err != nil {
		return 0, err
	}
	switch first {
	case 0xfd:
		v, err := c.readUint16()
		return uint64(v), err
	case 0xfe:
		v, err := c.readUint32()
		return uint64(v), err
	case 0xff:
		return c.readUint64()
	default:
		return uint64(first), nil
	}
}
