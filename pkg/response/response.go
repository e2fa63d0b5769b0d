// Package response writes the API's JSON responses. Success payloads are
// written as-is; failures use a single error shape:
//
//	{"statusCode": 400, "message": "Invalid product ID"}
package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends a 200 response with data as the body.
func JSON(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 response with data as the body.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, data)
}

// NoContent sends an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, errorBody{StatusCode: status, Message: message})
}

// ValidationError sends a 400 with field-level error details.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, errorBody{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     errs,
	})
}

// BadRequest sends a 400 with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound sends a 404 with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}
