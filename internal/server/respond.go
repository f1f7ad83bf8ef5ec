package server

import (
	"encoding/json"
	"log"
	"net/http"

	"task-server/internal/errors"
)

// writeJSON writes a JSON response with the provided status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeJSONError writes a JSON error response with the given status code and message.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps an application error to its HTTP status and writes a JSON
// error body. Client mistakes stay out of the server log.
func writeError(w http.ResponseWriter, err error) {
	if errors.ShouldLogError(err) {
		log.Printf("request failed: %v", err)
	}
	writeJSONError(w, errors.HTTPStatus(err), errors.GetUserMessage(err))
}
