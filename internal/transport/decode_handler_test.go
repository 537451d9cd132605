package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/metrics"
)

const legacyTxHex = "0100000001c997a5e56e104102fa209c6a852dd90660a20b2d9c352423edce25857fcd3704000000004847304402204e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd410220181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d0901ffffffff0200ca9a3b00000000434104ae1a62fe09c5f51b13905f07f06b99a2f7159b2225f374cd378d71302fa28414e7aab37397f554a7df5f142c21c1b7303b8a0626f1baded5c72a704f7e6cd84cac00286bee0000000043410411db93e1dcdb8a016b49840f8c53bc1eb68a382e97b1482ecad7b148a6909a5cb2e0eaddfb84ccf9744464f82e160bfa9b8b64f9d4c03f999b8643f656b412a3ac00000000"

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	NewDecodeHandler(zaptest.NewLogger(t), metrics.NewDecodeService()).Register(mux)
	return mux
}

func postDecode(t *testing.T, mux *http.ServeMux, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/decode", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDecodeHandler_Decode(t *testing.T) {
	mux := newTestMux(t)

	rec := postDecode(t, mux, decodeRequest{Hex: legacyTxHex})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp decodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Transaction)
	require.Equal(t, "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16", resp.Transaction.TxID)
	require.Len(t, resp.Transaction.Inputs, 1)
	require.Len(t, resp.Transaction.Outputs, 2)
	require.Empty(t, resp.Warnings)
	require.Nil(t, resp.Transaction.FeeSatoshis)
}

func TestDecodeHandler_Decode_withInputValues(t *testing.T) {
	mux := newTestMux(t)

	rec := postDecode(t, mux, decodeRequest{Hex: legacyTxHex, InputValues: []uint64{5_000_000_000}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp decodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Transaction.FeeSatoshis)
	require.EqualValues(t, 0, *resp.Transaction.FeeSatoshis)
	require.Empty(t, resp.Warnings)
}

func TestDecodeHandler_Decode_valueCountMismatchWarns(t *testing.T) {
	mux := newTestMux(t)

	rec := postDecode(t, mux, decodeRequest{Hex: legacyTxHex, InputValues: []uint64{1, 2, 3}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp decodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Warnings, 1)
	require.Contains(t, resp.Warnings[0], "provided 3 input values but transaction has 1 inputs")
}

func TestDecodeHandler_Decode_badRequests(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name    string
		payload any
	}{
		{name: "missing hex", payload: decodeRequest{}},
		{name: "malformed hex", payload: decodeRequest{Hex: "not-hex"}},
		{name: "truncated transaction", payload: decodeRequest{Hex: "01000000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postDecode(t, mux, tt.payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestDecodeHandler_Health(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
