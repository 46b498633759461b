package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Fields are extra top-level members merged into a success envelope. The
// spreadsheet-era frontend expects flat envelopes, not a nested data object.
type Fields map[string]any

func writeJSON(w http.ResponseWriter, statusCode int, payload map[string]any) {
	// Marshal before touching the ResponseWriter so an encode failure cannot
	// leave a half-written body behind a success status.
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
		statusCode = http.StatusInternalServerError
		body = []byte(`{"result":"error","error":"failed to encode response"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// Success writes {"result":"success"} with fields merged in at the top level.
func Success(w http.ResponseWriter, fields Fields) {
	payload := map[string]any{"result": "success"}
	for k, v := range fields {
		payload[k] = v
	}
	writeJSON(w, http.StatusOK, payload)
}

// Error writes {"result":"error","error":message} with the given status.
func Error(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"result": "error",
		"error":  message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, http.StatusServiceUnavailable, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
