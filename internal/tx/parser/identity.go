package parser

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

// computeTxID double-hashes the canonical non-witness serialization,
// rebuilt field by field from the parsed model rather than sliced from the
// original buffer. Compact sizes are re-encoded minimally, so a transaction
// that used a non-minimal on-wire encoding re-minimizes here (matching the
// reference behavior; see DESIGN.md).
func computeTxID(tx *model.Transaction) (string, error) {
	var buf bytes.Buffer

	var version [4]byte
	binary.LittleEndian.PutUint32(version[:], uint32(tx.Version))
	buf.Write(version[:])

	writeCompactSize(&buf, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		prevHash, err := chainhash.NewHashFromStr(in.TxID)
		if err != nil {
			return "", fmt.Errorf("input %d previous txid: %w", in.Index, err)
		}
		buf.Write(prevHash[:])

		var vout [4]byte
		binary.LittleEndian.PutUint32(vout[:], in.Vout)
		buf.Write(vout[:])

		scriptBytes, err := hex.DecodeString(in.ScriptSig.Hex)
		if err != nil {
			return "", fmt.Errorf("input %d script sig: %w", in.Index, err)
		}
		writeCompactSize(&buf, uint64(len(scriptBytes)))
		buf.Write(scriptBytes)

		var sequence [4]byte
		binary.LittleEndian.PutUint32(sequence[:], in.Sequence)
		buf.Write(sequence[:])
	}

	writeCompactSize(&buf, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		var value [8]byte
		binary.LittleEndian.PutUint64(value[:], out.Value)
		buf.Write(value[:])

		scriptBytes, err := hex.DecodeString(out.ScriptPubKey.Hex)
		if err != nil {
			return "", fmt.Errorf("output %d script pub key: %w", out.Index, err)
		}
		writeCompactSize(&buf, uint64(len(scriptBytes)))
		buf.Write(scriptBytes)
	}

	var locktime [4]byte
	binary.LittleEndian.PutUint32(locktime[:], tx.LockTime)
	buf.Write(locktime[:])

	return chainhash.DoubleHashH(buf.Bytes()).String(), nil
}

// writeCompactSize appends the minimal compact-size encoding of n.
func writeCompactSize(buf *bytes.Buffer, n uint64) {
	switch {
	case n < 0xfd:
		buf.WriteByte(byte(n))
	case n <= 0xffff:
		buf.WriteByte(0xfd)
		var v [2]byte
		binary.LittleEndian.PutUint16(v[:], uint16(n))
		buf.Write(v[:])
	case n <= 0xffffffff:
		buf.WriteByte(0xfe)
		var v [4]byte
		binary.LittleEndian.PutUint32(v[:], uint32(n))
		buf.Write(v[:])
	default:
		buf.WriteByte(0xff)
		var v [8]byte
		binary.LittleEndian.PutUint64(v[:], n)
		buf.Write(v[:])
	}
}

// compactSizeLen is the encoded width of n in bytes.
func compactSizeLen(n uint64) int {
	switch {
	case n < 0xfd:
		return 1
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// witnessPayloadSize sums, per input carrying a witness stack, the
// compact-size item count plus each item's compact-size length prefix and
// data bytes. Witness items are stored hex-encoded, so each item's byte
// length is half its string length.
func witnessPayloadSize(inputs []model.TxInput) int {
	size := 0
	for _, in := range inputs {
		if in.Witness == nil {
			continue
		}
		size += compactSizeLen(uint64(len(in.Witness)))
		for _, item := range in.Witness {
			itemLen := len(item) / 2
			size += compactSizeLen(uint64(itemLen)) + itemLen
		}
	}
	return size
}
