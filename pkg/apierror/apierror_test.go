package apierror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("flat message body", func(t *testing.T) {
		err := Decode(http.StatusBadRequest, []byte(`{"message":"Email already registered"}`))
		require.Equal(t, "BAD_REQUEST", err.Code)
		require.Equal(t, "Email already registered", err.Message)
		require.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	})

	t.Run("nested error envelope", func(t *testing.T) {
		err := Decode(http.StatusConflict, []byte(`{"error":{"code":"DUPLICATE","message":"Already exists","details":"title"}}`))
		require.Equal(t, "DUPLICATE", err.Code)
		require.Equal(t, "Already exists", err.Message)
		require.Equal(t, "title", err.Details)
	})

	t.Run("undecodable body falls back to status text", func(t *testing.T) {
		err := Decode(http.StatusInternalServerError, []byte("<html>oops</html>"))
		require.Equal(t, "SERVER_ERROR", err.Code)
		require.Equal(t, "Internal Server Error", err.Message)
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		err := Decode(http.StatusNotFound, nil)
		require.Equal(t, "NOT_FOUND", err.Code)
		require.Equal(t, "Not Found", err.Message)
	})
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "BAD_REQUEST: nope", New("BAD_REQUEST", "nope", "", 400).Error())
	require.Equal(t, "BAD_REQUEST: nope (field x)", New("BAD_REQUEST", "nope", "field x", 400).Error())
}

func TestUnauthorized(t *testing.T) {
	t.Parallel()

	require.True(t, Decode(http.StatusUnauthorized, nil).Unauthorized())
	require.False(t, Decode(http.StatusForbidden, nil).Unauthorized())
}
