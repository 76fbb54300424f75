// Package httpjson holds the JSON response helpers shared by all API
// handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Write encodes v as the response body with the given status code.
func Write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body. The underlying error string, when
// present, is forwarded in the details field.
func Error(w http.ResponseWriter, code int, msg string, err error) {
	body := errorBody{Error: msg}
	if err != nil {
		body.Details = err.Error()
	}
	Write(w, code, body)
}

// Message writes a 200 body with a message field, used by delete and
// status-change endpoints.
func Message(w http.ResponseWriter, msg string) {
	Write(w, http.StatusOK, map[string]string{"message": msg})
}
