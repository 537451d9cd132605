package script

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Disassemble renders script bytes as a space-separated sequence of opcode
// names and hex-encoded push data. A push running past the end of the script
// truncates the output with an inline error token instead of failing: a
// malformed script is still valid on the wire, so disassembly must never
// abort a transaction decode.
func Disassemble(pkScript []byte) string {
	if len(pkScript) == 0 {
		return ""
	}

	var parts []string
	i := 0
	for i < len(pkScript) {
		op := pkScript[i]
		switch {
		case op >= 0x01 && op <= 0x4b:
			// Direct push: the opcode byte is the data length.
			n := int(op)
			if i+1+n > len(pkScript) {
				parts = append(parts, fmt.Sprintf("[error: push %d bytes past end]", n))
				return strings.Join(parts, " ")
			}
			parts = append(parts, hex.EncodeToString(pkScript[i+1:i+1+n]))
			i += 1 + n
		case op == opPushData1:
			if i+2 > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA1 past end]"), " ")
			}
			n := int(pkScript[i+1])
			if i+2+n > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA1 past end]"), " ")
			}
			parts = append(parts, hex.EncodeToString(pkScript[i+2:i+2+n]))
			i += 2 + n
		case op == opPushData2:
			if i+3 > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA2 past end]"), " ")
			}
			n := int(binary.LittleEndian.Uint16(pkScript[i+1 : i+3]))
			if i+3+n > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA2 past end]"), " ")
			}
			parts = append(parts, hex.EncodeToString(pkScript[i+3:i+3+n]))
			i += 3 + n
		case op == opPushData4:
			if i+5 > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA4 past end]"), " ")
			}
			n := int(binary.LittleEndian.Uint32(pkScript[i+1 : i+5]))
			if n < 0 || i+5+n > len(pkScript) {
				return strings.Join(append(parts, "[error: PUSHDATA4 past end]"), " ")
			}
			parts = append(parts, hex.EncodeToString(pkScript[i+5:i+5+n]))
			i += 5 + n
		default:
			parts = append(parts, OpcodeName(op))
			i++
		}
	}
	return strings.Join(parts, " ")
}
