package api

import (
	"encoding/json"
	"net/http"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// envelope is the transaction envelope common to every Alpaca response.
// ErrorNumber 0 with an empty ErrorMessage means success.
type envelope struct {
	ClientTransactionID uint32 `json:"ClientTransactionID"`
	ServerTransactionID uint32 `json:"ServerTransactionID"`
	ErrorNumber         int32  `json:"ErrorNumber"`
	ErrorMessage        string `json:"ErrorMessage"`
}

// valueEnvelope carries a getter's result alongside the envelope fields.
type valueEnvelope struct {
	envelope
	Value any `json:"Value"`
}

// imageEnvelope is the JSON fallback shape for imagearray when the client
// did not negotiate the binary encoding. Type and Rank describe the nested
// Value array.
type imageEnvelope struct {
	envelope
	Type  int32 `json:"Type"`
	Rank  int32 `json:"Rank"`
	Value any   `json:"Value"`
}

func newEnvelope(clientTxn, serverTxn uint32) envelope {
	return envelope{
		ClientTransactionID: clientTxn,
		ServerTransactionID: serverTxn,
	}
}

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best-effort write to response; connection may be closed
	json.NewEncoder(w).Encode(v)
}

// writeValue writes a successful getter response.
func writeValue(w http.ResponseWriter, clientTxn, serverTxn uint32, value any) {
	writeJSON(w, http.StatusOK, valueEnvelope{
		envelope: newEnvelope(clientTxn, serverTxn),
		Value:    value,
	})
}

// writeOK writes a successful setter response. Setters carry no Value.
func writeOK(w http.ResponseWriter, clientTxn, serverTxn uint32) {
	writeJSON(w, http.StatusOK, newEnvelope(clientTxn, serverTxn))
}

// writeASCOMError writes a device failure as a 200 response with the error
// carried in the envelope.
func writeASCOMError(w http.ResponseWriter, clientTxn, serverTxn uint32, ascomErr *ascom.Error) {
	env := newEnvelope(clientTxn, serverTxn)
	env.ErrorNumber = ascomErr.Number
	env.ErrorMessage = ascomErr.Message
	writeJSON(w, http.StatusOK, env)
}

// writeBadRequest rejects an unroutable request. This is the only error
// path that leaves the envelope protocol: the request never reached a
// device, so there is no transaction to report.
func writeBadRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}
