package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
)

type dataResponse struct {
	Data interface{} `json:"data"`
}

type pagedResponse struct {
	Data        interface{} `json:"data"`
	Total       int         `json:"total"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
}

type messageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return
	}
}

// JSON writes a single-object envelope.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	write(w, status, dataResponse{Data: data})
}

// Paged writes a list envelope with pagination metadata.
func Paged(w http.ResponseWriter, status int, data interface{}, total, currentPage, totalPages int) {
	write(w, status, pagedResponse{Data: data, Total: total, CurrentPage: currentPage, TotalPages: totalPages})
}

// Message writes an acknowledgement, optionally echoing the affected record.
func Message(w http.ResponseWriter, status int, msg string, data interface{}) {
	write(w, status, messageResponse{Message: msg, Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	write(w, status, errorResponse{Error: errMsg})
}

// FromError maps service errors onto HTTP statuses. Unknown errors are
// reported as a generic 500 so internals never leak to clients.
func FromError(w http.ResponseWriter, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		write(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Details: ve.Details})
		return
	}
	var ce *apperrors.ConflictError
	if errors.As(err, &ce) {
		Error(w, http.StatusBadRequest, ce.Message)
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		Error(w, http.StatusNotFound, "not found")
		return
	}
	Error(w, http.StatusInternalServerError, "internal server error")
}
