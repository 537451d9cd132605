package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

var (
	headerColor  = color.New(color.FgHiBlue)
	titleColor   = color.New(color.FgHiBlue, color.Bold)
	boldAmount   = color.New(color.FgGreen, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgYellow)
	amountColor  = color.New(color.FgGreen)
	feeColor     = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
	coinbaseTint = color.New(color.FgMagenta, color.Bold)
)

const prettyRule = "═══════════════════════════════════════════════════════════════"

// Pretty writes the full colorized inspection report.
func Pretty(w io.Writer, tx *model.Transaction) {
	divider := dimColor.Sprint(strings.Repeat("─", 60))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerColor.Sprint(prettyRule))
	fmt.Fprintln(w, titleColor.Sprint("                    BITCOIN TRANSACTION"))
	fmt.Fprintln(w, headerColor.Sprint(prettyRule))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionColor.Sprint("Transaction Info"))
	fmt.Fprintf(w, "  %s %s\n", labelColor.Sprint("TXID:"), valueColor.Sprint(tx.TxID))
	if tx.IsSegWit {
		fmt.Fprintf(w, "  %s %s\n", labelColor.Sprint("WTXID:"), valueColor.Sprint(tx.WTxID))
	}
	fmt.Fprintf(w, "  %s %d\n", labelColor.Sprint("Version:"), tx.Version)
	segwit := "No"
	if tx.IsSegWit {
		segwit = amountColor.Sprint("Yes")
	}
	fmt.Fprintf(w, "  %s %s\n", labelColor.Sprint("SegWit:"), segwit)
	fmt.Fprintf(w, "  %s %d bytes\n", labelColor.Sprint("Size:"), tx.RawSize)
	fmt.Fprintf(w, "  %s %d vbytes\n", labelColor.Sprint("Virtual Size:"), tx.VSize())
	fmt.Fprintf(w, "  %s %d WU\n", labelColor.Sprint("Weight:"), tx.Weight)
	fmt.Fprintf(w, "  %s %s\n", labelColor.Sprint("Locktime:"), FormatLocktime(tx.LockTime))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s (%d)\n", sectionColor.Sprint("Inputs"), len(tx.Inputs))
	fmt.Fprintln(w, divider)
	for _, in := range tx.Inputs {
		printInput(w, in)
	}

	fmt.Fprintf(w, "%s (%d)\n", sectionColor.Sprint("Outputs"), len(tx.Outputs))
	fmt.Fprintln(w, divider)
	for _, out := range tx.Outputs {
		printOutput(w, out)
	}

	fmt.Fprintln(w, sectionColor.Sprint("Summary"))
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "  %s %s sats (%s)\n",
		labelColor.Sprint("Total Output:"),
		amountColor.Sprintf("%d", tx.TotalOutputSatoshis),
		formatBTC(tx.TotalOutputSatoshis))
	if tx.FeeSatoshis != nil {
		fmt.Fprintf(w, "  %s %s sats (%s)\n",
			labelColor.Sprint("Fee:"),
			feeColor.Sprintf("%d", *tx.FeeSatoshis),
			formatBTC(*tx.FeeSatoshis))
		feeRate := float64(*tx.FeeSatoshis) / float64(tx.VSize())
		fmt.Fprintf(w, "  %s %.2f sat/vB\n", labelColor.Sprint("Fee Rate:"), feeRate)
	}
	fmt.Fprintln(w)
}

func printInput(w io.Writer, in model.TxInput) {
	fmt.Fprintf(w, "  %s #%d\n", labelColor.Sprint("Input"), in.Index)
	if in.IsCoinbase {
		fmt.Fprintf(w, "    Type: %s\n", coinbaseTint.Sprint("Coinbase"))
	} else {
		fmt.Fprintf(w, "    Spends: %s:%d\n", valueColor.Sprint(in.TxID), in.Vout)
	}
	if in.Value != nil {
		fmt.Fprintf(w, "    Value: %s sats (%s)\n",
			amountColor.Sprintf("%d", *in.Value), formatBTC(*in.Value))
	}
	fmt.Fprintf(w, "    Sequence: 0x%08x\n", in.Sequence)
	if in.ScriptSig.Hex != "" {
		fmt.Fprintf(w, "    ScriptSig: %d bytes\n", in.ScriptSig.Size)
		if len(in.ScriptSig.Asm) < 100 {
			fmt.Fprintf(w, "      %s\n", dimColor.Sprint(in.ScriptSig.Asm))
		}
	}
	if in.Witness != nil {
		fmt.Fprintf(w, "    Witness: %d items\n", len(in.Witness))
		for i, item := range in.Witness {
			if len(item) < 100 {
				fmt.Fprintf(w, "      [%d] %s\n", i, dimColor.Sprint(item))
			} else {
				fmt.Fprintf(w, "      [%d] %s...\n", i, dimColor.Sprint(item[:64]))
			}
		}
	}
	fmt.Fprintln(w)
}

func printOutput(w io.Writer, out model.TxOutput) {
	fmt.Fprintf(w, "  %s #%d\n", labelColor.Sprint("Output"), out.Index)
	fmt.Fprintf(w, "    Value: %s sats (%s)\n",
		boldAmount.Sprintf("%d", out.Value), formatBTC(out.Value))
	fmt.Fprintf(w, "    Type: %s\n", sectionColor.Sprint(out.ScriptType.Description()))
	if out.Address != nil {
		fmt.Fprintf(w, "    Address: %s\n", valueColor.Sprint(out.Address.Mainnet))
		fmt.Fprintf(w, "    Testnet: %s\n", dimColor.Sprint(out.Address.Testnet))
	}
	fmt.Fprintf(w, "    Script: %d bytes\n", out.ScriptPubKey.Size)
	if len(out.ScriptPubKey.Asm) < 100 {
		fmt.Fprintf(w, "      %s\n", dimColor.Sprint(out.ScriptPubKey.Asm))
	}
	fmt.Fprintln(w)
}
