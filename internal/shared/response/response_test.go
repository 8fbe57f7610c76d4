package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Success(c, http.StatusOK, map[string]string{"name": "RTX 4070"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.Nil(t, body.Meta)
}

func TestSuccessWithMetaDerivesPages(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		SuccessWithMeta(c, http.StatusOK, []string{}, &Meta{Page: 1, Limit: 20, Total: 41})
	})

	require.NotNil(t, body.Meta)
	assert.Equal(t, 3, body.Meta.Pages)
}

func TestSuccessWithMetaZeroLimitLeavesPagesUnset(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		SuccessWithMeta(c, http.StatusOK, []string{}, &Meta{Total: 5})
	})

	require.NotNil(t, body.Meta)
	assert.Equal(t, 0, body.Meta.Pages)
}

func TestErrorHelpersCarryStableCodes(t *testing.T) {
	cases := []struct {
		write  func(c *gin.Context)
		status int
		code   string
	}{
		{func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, "BAD_REQUEST"},
		{func(c *gin.Context) { Unauthorized(c, "who") }, http.StatusUnauthorized, "UNAUTHORIZED"},
		{func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden, "FORBIDDEN"},
		{func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, "NOT_FOUND"},
		{func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict, "CONFLICT"},
		{func(c *gin.Context) { InternalServerError(c, "boom") }, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		w, body := record(t, tc.write)
		assert.Equal(t, tc.status, w.Code)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, tc.code, body.Error.Code)
	}
}

func TestErrorWithDetails(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed",
			map[string]string{"name": "cannot be blank"})
	})

	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}
