package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore_backend/internal/shared/httperr"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	StackTrace string `json:"stackTrace"`
}

func serveWithError(t *testing.T, development bool, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(development))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandler_DomainError(t *testing.T) {
	w := serveWithError(t, false, httperr.NotFound("User not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, 404, body.StatusCode)
	assert.Equal(t, "User not found", body.Message)
	assert.Empty(t, body.StackTrace, "stack traces never leave production mode")
}

func TestErrorHandler_DomainErrorInDevelopment(t *testing.T) {
	w := serveWithError(t, true, httperr.BadRequest("Invalid limit", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, 400, body.StatusCode)
	assert.Equal(t, "Invalid limit", body.Message)
	assert.NotEmpty(t, body.StackTrace)
}

func TestErrorHandler_UnrecognizedError(t *testing.T) {
	t.Run("production hides the detail", func(t *testing.T) {
		w := serveWithError(t, false, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		body := decode(t, w)
		assert.Equal(t, 500, body.StatusCode)
		assert.Equal(t, "Whoops, looks like something went wrong...", body.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("development exposes the detail", func(t *testing.T) {
		w := serveWithError(t, true, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		body := decode(t, w)
		assert.Equal(t, "pq: connection refused", body.Message)
		assert.NotEmpty(t, body.StackTrace)
	})
}

func TestErrorHandler_WrappedDomainErrorIsRecognized(t *testing.T) {
	cause := errors.New("duplicate key value")
	w := serveWithError(t, false, httperr.BadRequest("Error creating user", cause))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Error creating user", body.Message)
	assert.NotContains(t, w.Body.String(), "duplicate key value", "the cause stays server-side")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
