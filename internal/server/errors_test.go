package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "query", Message: "too short"}, http.StatusBadRequest},
		{"session not found", &ErrSessionNotFound{SessionID: uuid.New()}, http.StatusNotFound},
		{"persistence unavailable", &ErrPersistenceUnavailable{}, http.StatusNotImplemented},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrValidation{Field: "age", Message: "bad"}).Error(), "age")

	id := uuid.New()
	assert.Contains(t, (&ErrSessionNotFound{SessionID: id}).Error(), id.String())
}
