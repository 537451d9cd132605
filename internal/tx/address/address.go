// Package address derives network-specific address strings from classified
// locking scripts.
package address

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/script"
)

// encoder builds one network's address string from the embedded hash or key.
type encoder func(payload []byte, params *chaincfg.Params) (btcutil.Address, error)

// Derive returns the mainnet/testnet address pair for a classified output
// script, or nil for kinds with no canonical address (op_return, multisig,
// witness_unknown, nonstandard). Malformed payloads and encoding failures
// also yield nil rather than an error: address derivation must never abort
// output parsing.
func Derive(pkScript []byte, kind script.Kind) *model.AddressInfo {
	switch kind {
	case script.KindP2PKH:
		if len(pkScript) < 23 {
			return nil
		}
		return encodeBoth(pkScript[3:23], "P2PKH", newPubKeyHash)
	case script.KindP2SH:
		if len(pkScript) < 22 {
			return nil
		}
		return encodeBoth(pkScript[2:22], "P2SH", newScriptHash)
	case script.KindP2WPKH:
		if len(pkScript) < 22 {
			return nil
		}
		return encodeBoth(pkScript[2:22], "P2WPKH", newWitnessPubKeyHash)
	case script.KindP2WSH:
		if len(pkScript) < 34 {
			return nil
		}
		return encodeBoth(pkScript[2:34], "P2WSH", newWitnessScriptHash)
	case script.KindP2TR:
		if len(pkScript) < 34 {
			return nil
		}
		return encodeBoth(pkScript[2:34], "P2TR", newTaproot)
	case script.KindP2PK:
		pubKeyLen := int(pkScript[0])
		if len(pkScript) <= pubKeyLen {
			return nil
		}
		hash := btcutil.Hash160(pkScript[1 : 1+pubKeyLen])
		return encodeBoth(hash, "P2PK (derived P2PKH)", newPubKeyHash)
	default:
		return nil
	}
}

func encodeBoth(payload []byte, addressType string, encode encoder) *model.AddressInfo {
	mainnet, err := encode(payload, &chaincfg.MainNetParams)
	if err != nil {
		return nil
	}
	testnet, err := encode(payload, &chaincfg.TestNet3Params)
	if err != nil {
		return nil
	}
	return &model.AddressInfo{
		Mainnet:     mainnet.EncodeAddress(),
		Testnet:     testnet.EncodeAddress(),
		AddressType: addressType,
	}
}

func newPubKeyHash(payload []byte, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressPubKeyHash(payload, params)
}

func newScriptHash(payload []byte, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressScriptHashFromHash(payload, params)
}

func newWitnessPubKeyHash(payload []byte, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressWitnessPubKeyHash(payload, params)
}

func newWitnessScriptHash(payload []byte, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressWitnessScriptHash(payload, params)
}

func newTaproot(payload []byte, params *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressTaproot(payload, params)
}
