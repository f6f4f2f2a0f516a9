package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"phoenix-booking-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("constructors carry status and reason", func(t *testing.T) {
		testCases := []struct {
			err    error
			code   int
			reason string
		}{
			{errors.BadRequest("bad"), http.StatusBadRequest, errors.ReasonValidation},
			{errors.NotFound("missing"), http.StatusNotFound, errors.ReasonNotFound},
			{errors.Conflict("taken"), http.StatusConflict, errors.ReasonConflict},
			{errors.UnauthorizedError("who"), http.StatusUnauthorized, errors.ReasonUnauthorized},
			{errors.Forbidden("no"), http.StatusForbidden, errors.ReasonForbidden},
			{errors.UpstreamUnavailable("down"), http.StatusBadGateway, errors.ReasonUpstreamUnavailable},
			{errors.InternalServerError("boom"), http.StatusInternalServerError, errors.ReasonInternal},
		}

		for _, tc := range testCases {
			ce, ok := errors.As(tc.err)
			assert.True(t, ok)
			assert.Equal(t, tc.code, ce.Code)
			assert.Equal(t, tc.reason, ce.Reason)
		}
	})

	t.Run("wrapped errors keep their reason", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", errors.UpstreamUnavailable("catalog down"))

		assert.True(t, errors.HasReason(err, errors.ReasonUpstreamUnavailable))
		assert.False(t, errors.HasReason(err, errors.ReasonNotFound))
		assert.Equal(t, "lookup: catalog down", err.Error())
	})

	t.Run("plain errors are not custom errors", func(t *testing.T) {
		_, ok := errors.As(fmt.Errorf("plain"))
		assert.False(t, ok)
	})
}
