package render

import (
	"fmt"
	"io"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

// Summary writes a short plain-text digest of the transaction.
func Summary(w io.Writer, tx *model.Transaction) {
	fmt.Fprintf(w, "Transaction: %s\n", tx.TxID)
	fmt.Fprintf(w, "  Version: %d, SegWit: %t\n", tx.Version, tx.IsSegWit)
	fmt.Fprintf(w, "  %d input(s), %d output(s)\n", len(tx.Inputs), len(tx.Outputs))
	fmt.Fprintf(w, "  Size: %d bytes, vSize: %d vbytes\n", tx.RawSize, tx.VSize())
	fmt.Fprintf(w, "  Total output: %.8f BTC (%d sats)\n", tx.TotalOutputBTC, tx.TotalOutputSatoshis)
	if tx.FeeSatoshis != nil {
		fmt.Fprintf(w, "  Fee: %.8f BTC (%d sats)\n", *tx.FeeBTC, *tx.FeeSatoshis)
	}

	fmt.Fprintln(w, "\nOutputs:")
	for _, out := range tx.Outputs {
		addr := "[non-standard]"
		if out.Address != nil {
			addr = out.Address.Mainnet
		}
		fmt.Fprintf(w, "  #%d: %.8f BTC -> %s (%s)\n",
			out.Index, out.ValueBTC, addr, out.ScriptType.Description())
	}
}
