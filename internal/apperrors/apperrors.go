// Package apperrors defines the error taxonomy the API exposes: not-found,
// conflict, service-unavailable and unexpected. Handlers return these and the
// terminal error handler shapes them into responses.
package apperrors

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Error carries a client-visible HTTP status and message alongside the
// underlying cause.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// ErrProductNotFound is returned when the requested id has no row.
var ErrProductNotFound = &Error{Status: http.StatusNotFound, Message: "Producto no encontrado"}

// FromDatabase classifies a store error: duplicate key becomes a conflict,
// an unreachable database becomes service-unavailable, anything else is an
// unexpected internal error.
func FromDatabase(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Status: http.StatusConflict, Message: "El producto ya existe", Err: err}
	case isConnectionError(err):
		return &Error{Status: http.StatusServiceUnavailable, Message: "Servicio no disponible", Err: err}
	default:
		return &Error{Status: http.StatusInternalServerError, Message: "Error interno del servidor", Err: err}
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	message := err.Error()
	return strings.Contains(message, "connection refused") ||
		strings.Contains(message, "connection reset") ||
		strings.Contains(message, "closed network connection")
}
