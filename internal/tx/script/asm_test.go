package script

import (
	"encoding/hex"
	"testing"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		name      string
		scriptHex string
		want      string
	}{
		{
			name:      "empty script",
			scriptHex: "",
			want:      "",
		},
		{
			name:      "p2pkh",
			scriptHex: "76a91489abcdefabbaabbaabbaabbaabbaabbaabbaabba88ac",
			want:      "OP_DUP OP_HASH160 89abcdefabbaabbaabbaabbaabbaabbaabbaabba OP_EQUALVERIFY OP_CHECKSIG",
		},
		{
			name:      "direct push",
			scriptHex: "02abcd",
			want:      "abcd",
		},
		{
			name:      "pushdata1",
			scriptHex: "4c02abcd",
			want:      "abcd",
		},
		{
			name:      "pushdata2",
			scriptHex: "4d0200abcd",
			want:      "abcd",
		},
		{
			name:      "pushdata4",
			scriptHex: "4e02000000abcd",
			want:      "abcd",
		},
		{
			name:      "direct push past end truncates with token",
			scriptHex: "05abcd",
			want:      "[error: push 5 bytes past end]",
		},
		{
			name:      "pushdata1 missing length byte",
			scriptHex: "4c",
			want:      "[error: PUSHDATA1 past end]",
		},
		{
			name:      "pushdata1 data past end",
			scriptHex: "4c05abcd",
			want:      "[error: PUSHDATA1 past end]",
		},
		{
			name:      "pushdata2 data past end",
			scriptHex: "4dffffab",
			want:      "[error: PUSHDATA2 past end]",
		},
		{
			name:      "pushdata4 data past end",
			scriptHex: "4effffffffab",
			want:      "[error: PUSHDATA4 past end]",
		},
		{
			name:      "error token keeps preceding opcodes",
			scriptHex: "7605abcd",
			want:      "OP_DUP [error: push 5 bytes past end]",
		},
		{
			name:      "opcode names",
			scriptHex: "0051606ab1b2",
			want:      "OP_0 OP_1 OP_16 OP_RETURN OP_CHECKLOCKTIMEVERIFY OP_CHECKSEQUENCEVERIFY",
		},
		{
			name:      "unknown opcode",
			scriptHex: "ff",
			want:      "OP_UNKNOWN_ff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.scriptHex)
			if err != nil {
				t.Fatal(err)
			}
			if got := Disassemble(raw); got != tt.want {
				t.Errorf("Disassemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpcodeName(t *testing.T) {
	if got := OpcodeName(0xba); got != "OP_CHECKSIGADD" {
		t.Errorf("OpcodeName(0xba) = %q", got)
	}
	if got := OpcodeName(0xfe); got != "OP_UNKNOWN_fe" {
		t.Errorf("OpcodeName(0xfe) = %q", got)
	}
}
