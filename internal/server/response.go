package server

import (
	"encoding/json"
	"net/http"
)

// Envelope is the wire convention for every JSON response: success carries
// data, failure carries a short error string. Internal details never leak
// past the message.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func writeFailure(w http.ResponseWriter, code int, message string, err error) {
	env := Envelope{
		Status:  false,
		Message: message,
	}
	if err != nil {
		env.Error = err.Error()
	}
	writeJSON(w, code, env)
}
