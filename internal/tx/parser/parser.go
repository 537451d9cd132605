package parser

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/address"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/script"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/pkg/safe"
)

const (
	witnessMarker = 0x00
	witnessFlag   = 0x01

	// Preallocation cap for wire-declared counts. Counts above this still
	// decode; they just grow the slice instead of reserving up front.
	maxPrealloc = 512
)

// DecodeHex decodes a single hex-encoded transaction. Whitespace around the
// string is ignored and the hex is case-insensitive.
func DecodeHex(txHex string) (*model.Transaction, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(txHex))
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes decodes a single serialized transaction. The buffer must hold
// exactly one transaction: bytes left over after the locktime field are
// rejected as trailing data.
func DecodeBytes(raw []byte) (*model.Transaction, error) {
	c := newCursor(raw)
	tx, err := decodeTransaction(c)
	if err != nil {
		return nil, err
	}
	if rem := c.remaining(); rem > 0 {
		return nil, &TrailingDataError{Remaining: rem}
	}
	return tx, nil
}

// decodeTransaction runs the sequential decode stages: version, witness
// marker lookahead, inputs, outputs, witness stacks, locktime, then the
// identifier and weight computation.
func decodeTransaction(c *cursor) (*model.Transaction, error) {
	start := c.position()

	version, err := c.readInt32()
	if err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}

	isSegWit := detectWitness(c)

	inputCount, err := c.readCompactSize()
	if err != nil {
		return nil, fmt.Errorf("read input count: %w", err)
	}
	if inputCount == 0 && !isSegWit {
		return nil, &InvalidTransactionError{Reason: "transaction has no inputs"}
	}
	if _, err := safe.Uint32(inputCount); err != nil {
		return nil, &InvalidTransactionError{Reason: fmt.Sprintf("input count %d out of range", inputCount)}
	}

	inputs := make([]model.TxInput, 0, prealloc(inputCount))
	for i := 0; i < int(inputCount); i++ {
		input, err := decodeInput(c, i)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}

	outputCount, err := c.readCompactSize()
	if err != nil {
		return nil, fmt.Errorf("read output count: %w", err)
	}
	if outputCount == 0 {
		return nil, &InvalidTransactionError{Reason: "transaction has no outputs"}
	}
	if _, err := safe.Uint32(outputCount); err != nil {
		return nil, &InvalidTransactionError{Reason: fmt.Sprintf("output count %d out of range", outputCount)}
	}

	outputs := make([]model.TxOutput, 0, prealloc(outputCount))
	for i := 0; i < int(outputCount); i++ {
		output, err := decodeOutput(c, i)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	if isSegWit {
		for i := range inputs {
			witness, err := decodeWitness(c, i)
			if err != nil {
				return nil, err
			}
			inputs[i].Witness = witness
		}
	}

	locktime, err := c.readUint32()
	if err != nil {
		return nil, fmt.Errorf("read locktime: %w", err)
	}

	rawSize := c.position() - start
	rawTx := c.data[start:c.position()]

	tx := &model.Transaction{
		Version:  version,
		IsSegWit: isSegWit,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: locktime,
		WTxID:    chainhash.DoubleHashH(rawTx).String(),
		RawSize:  rawSize,
	}

	txid, err := computeTxID(tx)
	if err != nil {
		return nil, fmt.Errorf("compute txid: %w", err)
	}
	tx.TxID = txid

	if isSegWit {
		baseSize := rawSize - 2 - witnessPayloadSize(inputs)
		tx.Weight = baseSize*3 + rawSize
	} else {
		tx.Weight = rawSize * 4
	}

	tx.TotalOutputSatoshis = tx.TotalOutputValue()
	tx.TotalOutputBTC = model.SatoshisToBTC(tx.TotalOutputSatoshis)

	return tx, nil
}

// detectWitness peeks at the two bytes after the version. A 0x00 marker with
// a 0x01 flag means witness encoding; anything else rewinds the cursor. This
// is the only place the cursor moves backwards.
func detectWitness(c *cursor) bool {
	saved := c.pos
	marker, err := c.readUint8()
	if err != nil {
		c.pos = saved
		return false
	}
	flag, err := c.readUint8()
	if err != nil || marker != witnessMarker || flag != witnessFlag {
		c.pos = saved
		return false
	}
	return true
}

func decodeInput(c *cursor, index int) (model.TxInput, error) {
	prevHash, err := c.readHash()
	if err != nil {
		return model.TxInput{}, fmt.Errorf("input %d: read previous txid: %w", index, err)
	}
	vout, err := c.readUint32()
	if err != nil {
		return model.TxInput{}, fmt.Errorf("input %d: read previous vout: %w", index, err)
	}
	scriptBytes, err := readVarBytes(c)
	if err != nil {
		return model.TxInput{}, fmt.Errorf("input %d: read script sig: %w", index, err)
	}
	sequence, err := c.readUint32()
	if err != nil {
		return model.TxInput{}, fmt.Errorf("input %d: read sequence: %w", index, err)
	}

	isCoinbase := prevHash == chainhash.Hash{} && vout == math.MaxUint32

	// Coinbase scripts are arbitrary data, not opcodes; mark them instead
	// of disassembling.
	var asm string
	if isCoinbase {
		asm = "[coinbase] " + hex.EncodeToString(scriptBytes)
	} else {
		asm = script.Disassemble(scriptBytes)
	}

	return model.TxInput{
		Index: index,
		TxID:  prevHash.String(),
		Vout:  vout,
		ScriptSig: model.Script{
			Hex:  hex.EncodeToString(scriptBytes),
			Asm:  asm,
			Size: len(scriptBytes),
		},
		Sequence:   sequence,
		IsCoinbase: isCoinbase,
	}, nil
}

func decodeOutput(c *cursor, index int) (model.TxOutput, error) {
	value, err := c.readUint64()
	if err != nil {
		return model.TxOutput{}, fmt.Errorf("output %d: read value: %w", index, err)
	}
	scriptBytes, err := readVarBytes(c)
	if err != nil {
		return model.TxOutput{}, fmt.Errorf("output %d: read script pub key: %w", index, err)
	}

	kind := script.Classify(scriptBytes)

	return model.TxOutput{
		Index:    index,
		Value:    value,
		ValueBTC: model.SatoshisToBTC(value),
		ScriptPubKey: model.Script{
			Hex:  hex.EncodeToString(scriptBytes),
			Asm:  script.Disassemble(scriptBytes),
			Size: len(scriptBytes),
		},
		ScriptType: kind,
		Address:    address.Derive(scriptBytes, kind),
	}, nil
}

// decodeWitness reads one input's witness stack. The returned slice is
// non-nil even for an empty stack, so the model keeps "present but empty"
// distinct from the legacy no-witness case.
func decodeWitness(c *cursor, index int) ([]string, error) {
	itemCount, err := c.readCompactSize()
	if err != nil {
		return nil, fmt.Errorf("input %d: read witness item count: %w", index, err)
	}
	if _, err := safe.Uint32(itemCount); err != nil {
		return nil, &InvalidTransactionError{Reason: fmt.Sprintf("input %d witness item count %d out of range", index, itemCount)}
	}

	items := make([]string, 0, prealloc(itemCount))
	for i := 0; i < int(itemCount); i++ {
		item, err := readVarBytes(c)
		if err != nil {
			return nil, fmt.Errorf("input %d: read witness item %d: %w", index, i, err)
		}
		items = append(items, hex.EncodeToString(item))
	}
	return items, nil
}

func readVarBytes(c *cursor) ([]byte, error) {
	length, err := c.readCompactSize()
	if err != nil {
		return nil, err
	}
	if _, err := safe.Uint32(length); err != nil {
		return nil, &InvalidTransactionError{Reason: fmt.Sprintf("byte string length %d out of range", length)}
	}
	return c.readBytes(int(length))
}

func prealloc(count uint64) int {
	if count > maxPrealloc {
		return maxPrealloc
	}
	return int(count)
}
