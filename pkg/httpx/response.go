// Package httpx implements the JSON response envelope shared by every
// endpoint: {success, data?, count?, message?, error?}.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dcastano/optica-inventory/internal/apperr"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// OKCount is the listing envelope; count is the number of returned records.
func OKCount(w http.ResponseWriter, data interface{}, count int) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data, Count: &count})
}

func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, Response{Success: true, Data: data})
}

// Error maps the domain error taxonomy onto HTTP statuses: validation and
// out-of-stock to 400, missing records and empty reports to 404, anything
// unrecognized (storage faults included) to 500.
func Error(w http.ResponseWriter, message string, err error) {
	JSON(w, StatusFor(err), Response{Success: false, Message: message, Error: err.Error()})
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrOutOfStock):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrEmptyReport):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
