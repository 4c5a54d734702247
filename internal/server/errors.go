package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrSessionNotFound indicates a chat session was not found
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrPersistenceUnavailable indicates an operation needs a database and
// none is configured
type ErrPersistenceUnavailable struct{}

func (e *ErrPersistenceUnavailable) Error() string {
	return "chat persistence is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrPersistenceUnavailable:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
