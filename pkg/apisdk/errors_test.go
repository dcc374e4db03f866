package apisdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponse(t *testing.T) {
	t.Run("success is nil", func(t *testing.T) {
		require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusNoContent}, nil))
	})

	t.Run("validation details", func(t *testing.T) {
		body := []byte(`{"error":"validation_error","error_description":"invalid input","details":{"email":"is required"}}`)
		err := parseErrorResponse(&http.Response{StatusCode: http.StatusBadRequest}, body)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "is required", apiErr.Details["email"])
		require.True(t, IsCode(err, ErrorCodeValidation))
	})

	t.Run("non json body", func(t *testing.T) {
		err := parseErrorResponse(&http.Response{StatusCode: http.StatusBadGateway}, []byte("<html>"))
		require.True(t, IsCode(err, ErrorCodeServerError))
		require.Contains(t, err.Error(), "502")
	})
}
