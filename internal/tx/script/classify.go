package script

// Classify pattern-matches a locking script into its structural Kind.
// Rules are evaluated in order; the first match wins.
func Classify(pkScript []byte) Kind {
	if len(pkScript) == 0 {
		return KindNonStandard
	}

	switch {
	case isP2PKH(pkScript):
		return KindP2PKH
	case isP2SH(pkScript):
		return KindP2SH
	case isP2WPKH(pkScript):
		return KindP2WPKH
	case isP2WSH(pkScript):
		return KindP2WSH
	case isP2TR(pkScript):
		return KindP2TR
	case isP2PK(pkScript):
		return KindP2PK
	case pkScript[0] == opReturn:
		return KindOpReturn
	case isWitnessUnknown(pkScript):
		return KindWitnessUnknown
	case isMultisig(pkScript):
		return KindMultisig
	default:
		return KindNonStandard
	}
}

// DUP HASH160 <20 bytes> EQUALVERIFY CHECKSIG
func isP2PKH(s []byte) bool {
	return len(s) == 25 &&
		s[0] == opDup &&
		s[1] == opHash160 &&
		s[2] == 0x14 &&
		s[23] == opEqualVerify &&
		s[24] == opCheckSig
}

// HASH160 <20 bytes> EQUAL
func isP2SH(s []byte) bool {
	return len(s) == 23 &&
		s[0] == opHash160 &&
		s[1] == 0x14 &&
		s[22] == opEqual
}

// OP_0 <20 bytes>
func isP2WPKH(s []byte) bool {
	return len(s) == 22 && s[0] == op0 && s[1] == 0x14
}

// OP_0 <32 bytes>
func isP2WSH(s []byte) bool {
	return len(s) == 34 && s[0] == op0 && s[1] == 0x20
}

// OP_1 <32 bytes>
func isP2TR(s []byte) bool {
	return len(s) == 34 && s[0] == op1 && s[1] == 0x20
}

// <33|65 byte pubkey push> CHECKSIG
func isP2PK(s []byte) bool {
	return (len(s) == 35 || len(s) == 67) &&
		(s[0] == 0x21 || s[0] == 0x41) &&
		s[len(s)-1] == opCheckSig
}

// OP_1..OP_16 followed by a single push of 2..40 bytes filling the script.
// Witness versions 0 and 1 match the dedicated rules above, so anything
// landing here is a future witness version.
func isWitnessUnknown(s []byte) bool {
	if len(s) < 2 || s[0] < op1 || s[0] > op16 {
		return false
	}
	pushSize := int(s[1])
	return pushSize >= 2 && pushSize <= 40 && len(s) == 2+pushSize
}

// OP_m ... OP_n CHECKMULTISIG
func isMultisig(s []byte) bool {
	if len(s) < 3 {
		return false
	}
	if s[len(s)-1] != opCheckMultiSig {
		return false
	}
	m, n := s[0], s[len(s)-2]
	return m >= op1 && m <= op16 && n >= op1 && n <= op16
}
