package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrInvalidArgument, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrConflict, http.StatusConflict},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Status(tc.err), "for %v", tc.err)
	}
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("artwork not found: %w", ErrNotFound)
	require.Equal(t, http.StatusNotFound, Status(wrapped))

	twice := fmt.Errorf("while handling request: %w", wrapped)
	require.Equal(t, http.StatusNotFound, Status(twice))
}
