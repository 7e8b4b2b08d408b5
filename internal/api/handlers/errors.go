package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"Postagram/internal/core/result"
)

// WriteError writes a failure in the result envelope shape for errors the
// transport detects before reaching a service (bad JSON, bad query params)
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, result.Invalid[any](message))
}

// WriteResult writes a service result. successStatus is used when the result is ok;
// failures are mapped from the result's reason.
func WriteResult[T any](w http.ResponseWriter, successStatus int, res result.Result[T]) {
	status := successStatus
	if !res.OK {
		status = StatusFor(res.Reason())
	}
	WriteJSON(w, status, res)
}

// StatusFor maps a failure reason to an HTTP status code
func StatusFor(reason result.Reason) int {
	switch reason {
	case result.ReasonInvalid:
		return http.StatusBadRequest
	case result.ReasonNotFound:
		return http.StatusNotFound
	case result.ReasonConflict:
		return http.StatusConflict
	case result.ReasonInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// WriteJSON writes v as the JSON response body
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
