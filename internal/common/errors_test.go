package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidImage, http.StatusBadRequest},
		{ErrNoTextFound, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrRecognition, http.StatusInternalServerError},
		{ErrDatabase, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HTTPStatus(tt.err), "error %v", tt.err)
	}
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	err := WrapError(ErrNoTextFound, "no readable text in image")
	require.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Contains(t, err.Error(), "CONFIG_ERROR")
}
