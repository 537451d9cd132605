package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
)

// JSON writes the transaction model as JSON. Optional fields absent from
// the model are omitted entirely rather than emitted as null.
func JSON(w io.Writer, tx *model.Transaction, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(tx)
	} else {
		out, err = json.MarshalIndent(tx, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
