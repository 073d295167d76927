package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it as the bridge response body.
//
// Every payload the vault bridge emits — secret records, flow states,
// structured API errors — goes through this one function so the
// "Content-Type: application/json" header and the status code are always
// set before the body.
//
// If marshaling fails the response degrades to a plain 500; the vault
// never writes a half-serialized body.
//
// Returns the number of body bytes written and a non-nil error only when
// marshaling failed.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
