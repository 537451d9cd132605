// Package transport exposes the HTTP decode API.
package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/metrics"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/model"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/parser"
)

const maxRequestBody = 8 << 20

// DecodeHandler serves transaction decode requests over HTTP.
type DecodeHandler struct {
	logger  *zap.Logger
	metrics *metrics.DecodeService
}

// NewDecodeHandler returns a DecodeHandler instance.
func NewDecodeHandler(logger *zap.Logger, m *metrics.DecodeService) *DecodeHandler {
	return &DecodeHandler{logger: logger, metrics: m}
}

// Register mounts the handler's routes on the mux.
func (h *DecodeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/decode", h.Decode)
	mux.HandleFunc("GET /health", h.Health)
}

type decodeRequest struct {
	Hex         string   `json:"hex"`
	InputValues []uint64 `json:"input_values,omitempty"`
}

type decodeResponse struct {
	Transaction *model.Transaction `json:"transaction"`
	Warnings    []string           `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Health reports server health.
func (h *DecodeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Decode parses one serialized transaction and returns the decoded model.
// Input value count mismatches are reported as warnings, not errors.
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req decodeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.metrics.ObserveRequest(err, started)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Hex == "" {
		err := fmt.Errorf("missing hex field")
		h.metrics.ObserveRequest(err, started)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tx, err := parser.DecodeHex(req.Hex)
	if err != nil {
		h.metrics.ObserveRequest(err, started)
		h.logger.Info("decode failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var warnings []string
	if req.InputValues != nil {
		if len(req.InputValues) != len(tx.Inputs) {
			warnings = append(warnings, fmt.Sprintf(
				"provided %d input values but transaction has %d inputs",
				len(req.InputValues), len(tx.Inputs)))
		}
		tx.SetInputValues(req.InputValues)
	}

	scriptTypes := make([]string, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		scriptTypes = append(scriptTypes, string(out.ScriptType))
	}
	h.metrics.ObserveRequest(nil, started)
	h.metrics.ObserveTransaction(tx.RawSize, scriptTypes)

	h.logger.Debug("decoded transaction",
		zap.String("txid", tx.TxID),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)))

	writeJSON(w, http.StatusOK, decodeResponse{Transaction: tx, Warnings: warnings})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
