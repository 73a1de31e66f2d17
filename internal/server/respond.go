package server

import (
	"encoding/json"
	"net/http"
)

// Success envelope: {data, message?, count?}. Error envelope:
// {error, messages?, message?}.
type envelope struct {
	Data     any                 `json:"data,omitempty"`
	Message  string              `json:"message,omitempty"`
	Count    *int                `json:"count,omitempty"`
	Error    string              `json:"error,omitempty"`
	Messages map[string][]string `json:"messages,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Data: data, Message: message})
}

func writeList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, envelope{Data: data, Count: &count})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Message: message})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Error: msg})
}

func writeValidationError(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Error:    "Validation error",
		Messages: fields,
	})
}

func writeDatabaseError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, envelope{
		Error:   "Database error",
		Message: err.Error(),
	})
}
