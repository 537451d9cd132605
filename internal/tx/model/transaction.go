// Package model holds the decoded transaction model shared by the parser,
// renderers and transport layer.
package model

import (
	"github.com/btcsuite/btcd/btcutil"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/script"
)

// Transaction is one fully decoded Bitcoin transaction.
type Transaction struct {
	Version             int32      `json:"version"`
	IsSegWit            bool       `json:"is_segwit"`
	Inputs              []TxInput  `json:"inputs"`
	Outputs             []TxOutput `json:"outputs"`
	LockTime            uint32     `json:"locktime"`
	TxID                string     `json:"txid"`
	WTxID               string     `json:"wtxid"`
	RawSize             int        `json:"raw_size"`
	Weight              int        `json:"weight"`
	TotalOutputSatoshis uint64     `json:"total_output_satoshis"`
	TotalOutputBTC      float64    `json:"total_output_btc"`
	FeeSatoshis         *uint64    `json:"fee_satoshis,omitempty"`
	FeeBTC              *float64   `json:"fee_btc,omitempty"`
}

// TxInput references a previous transaction output being spent.
type TxInput struct {
	Index      int      `json:"index"`
	TxID       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	ScriptSig  Script   `json:"script_sig"`
	Sequence   uint32   `json:"sequence"`
	Witness    []string `json:"witness,omitempty"`
	Value      *uint64  `json:"value,omitempty"`
	IsCoinbase bool     `json:"is_coinbase"`
}

// TxOutput is an output created by the transaction.
type TxOutput struct {
	Index        int          `json:"index"`
	Value        uint64       `json:"value"`
	ValueBTC     float64      `json:"value_btc"`
	ScriptPubKey Script       `json:"script_pubkey"`
	ScriptType   script.Kind  `json:"script_type"`
	Address      *AddressInfo `json:"address,omitempty"`
}

// Script carries the raw hex, disassembly and byte length of a script.
// Immutable once produced by the decoder.
type Script struct {
	Hex  string `json:"hex"`
	Asm  string `json:"asm"`
	Size int    `json:"size"`
}

// AddressInfo is the derived address pair for a standard output script.
type AddressInfo struct {
	Mainnet     string `json:"mainnet"`
	Testnet     string `json:"testnet"`
	AddressType string `json:"address_type"`
}

// SatoshisToBTC converts a satoshi amount to BTC.
func SatoshisToBTC(satoshis uint64) float64 {
	return btcutil.Amount(satoshis).ToBTC()
}

// VSize is the virtual size in vbytes, ceil(weight/4).
func (t *Transaction) VSize() int {
	return (t.Weight + 3) / 4
}

// TotalOutputValue sums all output values in satoshis.
func (t *Transaction) TotalOutputValue() uint64 {
	var total uint64
	for _, out := range t.Outputs {
		total += out.Value
	}
	return total
}

// Fee returns input total minus output total, saturating at zero. It is nil
// unless a value has been supplied for every input.
func (t *Transaction) Fee() *uint64 {
	var totalIn uint64
	for _, in := range t.Inputs {
		if in.Value == nil {
			return nil
		}
		totalIn += *in.Value
	}
	var fee uint64
	if out := t.TotalOutputValue(); totalIn > out {
		fee = totalIn - out
	}
	return &fee
}

// SetInputValues injects externally supplied input values and recomputes the
// fee. This is the sole mutation permitted on a decoded transaction; the
// caller holding the model must be its only writer. Excess values are
// ignored and inputs beyond the supplied values stay unset.
func (t *Transaction) SetInputValues(values []uint64) {
	for i := range t.Inputs {
		if i >= len(values) {
			break
		}
		v := values[i]
		t.Inputs[i].Value = &v
	}
	if fee := t.Fee(); fee != nil {
		btc := SatoshisToBTC(*fee)
		t.FeeSatoshis = fee
		t.FeeBTC = &btc
	}
}
