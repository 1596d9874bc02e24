package server

import (
	"encoding/json"
	"net/http"
)

type parameterError struct {
	Parameter string `json:"parameter"`
	Error     string `json:"error"`
}

// badParameter responds with a 400 status and a JSON body naming the
// query parameter rejected.
func badParameter(w http.ResponseWriter, parameter string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	body := parameterError{Parameter: parameter, Error: err.Error()}
	_ = json.NewEncoder(w).Encode(body)
}
