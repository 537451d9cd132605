// Package render turns a decoded transaction into the CLI output formats:
// colorized pretty print, JSON, one-line summary and an ASCII flow diagram.
// Renderers consume the model read-only.
package render

import (
	"fmt"
	"time"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

// Format names accepted by the CLI.
const (
	FormatPretty  = "pretty"
	FormatJSON    = "json"
	FormatSummary = "summary"
	FormatDiagram = "diagram"
)

// FormatLocktime renders a locktime value with its interpretation: zero is
// no lock, values below 500,000,000 are block heights, the rest are unix
// timestamps.
func FormatLocktime(locktime uint32) string {
	switch {
	case locktime == 0:
		return "0 (no lock)"
	case locktime < 500_000_000:
		return fmt.Sprintf("%d (block height)", locktime)
	default:
		ts := time.Unix(int64(locktime), 0).UTC()
		return fmt.Sprintf("%d (%s)", locktime, ts.Format("2006-01-02 15:04:05 UTC"))
	}
}

func formatBTC(satoshis uint64) string {
	return fmt.Sprintf("%.8f BTC", model.SatoshisToBTC(satoshis))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
