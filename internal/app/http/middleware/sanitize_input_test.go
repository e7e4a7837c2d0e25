package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSanitizedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	r := newSanitizedRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo",
		bytes.NewReader([]byte(`{"notes":"<script>alert(1)</script>nice coin"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "nice coin")
}

func TestSanitizeAllowsEmptyBody(t *testing.T) {
	r := newSanitizedRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	r := newSanitizedRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte(`{not json`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
