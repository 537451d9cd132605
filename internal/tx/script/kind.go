// Package script classifies Bitcoin locking scripts and disassembles
// script bytes into human-readable form.
package script

// Kind is the structural class of a locking script.
type Kind string

const (
	KindP2PKH          Kind = "p2pkh"
	KindP2SH           Kind = "p2sh"
	KindP2WPKH         Kind = "p2wpkh"
	KindP2WSH          Kind = "p2wsh"
	KindP2TR           Kind = "p2tr"
	KindP2PK           Kind = "p2pk"
	KindMultisig       Kind = "multisig"
	KindOpReturn       Kind = "op_return"
	KindWitnessUnknown Kind = "witness_unknown"
	KindNonStandard    Kind = "nonstandard"
)

var kindDescriptions = map[Kind]string{
	KindP2PKH:          "P2PKH (Pay to Public Key Hash)",
	KindP2SH:           "P2SH (Pay to Script Hash)",
	KindP2WPKH:         "P2WPKH (Pay to Witness Public Key Hash)",
	KindP2WSH:          "P2WSH (Pay to Witness Script Hash)",
	KindP2TR:           "P2TR (Pay to Taproot)",
	KindP2PK:           "P2PK (Pay to Public Key)",
	KindMultisig:       "Bare Multisig",
	KindOpReturn:       "OP_RETURN (Data)",
	KindWitnessUnknown: "Witness Unknown",
	KindNonStandard:    "Non-standard",
}

// Description returns the long human-readable name of the kind.
func (k Kind) Description() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return string(k)
}
