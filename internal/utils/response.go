package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"ITINERARY_BACK-END/internal/dto"
)

// maxRequestBody caps JSON request bodies
const maxRequestBody = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes an error response in the shared error shape
func WriteErrorResponse(w http.ResponseWriter, status int, err string, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: err, Message: message})
}

// DecodeJSONRequest decodes the request body into v. On failure it writes a
// 400 response and returns the error; callers just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil {
		err := errors.New("request body is required")
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("request body is required")
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
