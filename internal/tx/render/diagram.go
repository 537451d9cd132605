package render

import (
	"fmt"
	"io"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

// Diagram writes an ASCII flow view: inputs on the left, outputs on the
// right, with an arrow on the middle row.
func Diagram(w io.Writer, tx *model.Transaction) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintf(w, "│ TX: %s...%s │\n", tx.TxID[:16], tx.TxID[len(tx.TxID)-8:])
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────┤")

	rows := len(tx.Inputs)
	if len(tx.Outputs) > rows {
		rows = len(tx.Outputs)
	}

	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(tx.Inputs) {
			left = diagramInput(tx.Inputs[i])
		}
		if i < len(tx.Outputs) {
			right = diagramOutput(tx.Outputs[i])
		}
		arrow := "    "
		if i == rows/2 {
			arrow = "═══►"
		}
		fmt.Fprintf(w, "│ %-30s %s %-34s │\n", truncate(left, 30), arrow, truncate(right, 34))
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────┤")
	footer := fmt.Sprintf("Total: %.8f BTC", tx.TotalOutputBTC)
	if tx.FeeSatoshis != nil {
		footer += fmt.Sprintf(" | Fee: %d sats", *tx.FeeSatoshis)
	}
	fmt.Fprintf(w, "│ %-67s │\n", footer)
	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────┘")
	fmt.Fprintln(w)
}

func diagramInput(in model.TxInput) string {
	if in.IsCoinbase {
		return "  [COINBASE]"
	}
	value := "? BTC"
	if in.Value != nil {
		value = fmt.Sprintf("%.4f BTC", model.SatoshisToBTC(*in.Value))
	}
	return fmt.Sprintf("  %s:%d (%s)", in.TxID[:8], in.Vout, value)
}

func diagramOutput(out model.TxOutput) string {
	addr := "[script]"
	if out.Address != nil {
		addr = truncate(out.Address.Mainnet, 23)
	}
	return fmt.Sprintf("%.4f BTC -> %s", out.ValueBTC, addr)
}
