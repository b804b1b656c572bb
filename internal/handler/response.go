package handler

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: status, Message: message})
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Status: status, Message: message, Data: data})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
