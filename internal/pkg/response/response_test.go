package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, gin.H{"user": "ada"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","user":"ada"}`, w.Body.String())
}

func TestCreatedEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, gin.H{"comment": "hi"})
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","comment":"hi"}`, w.Body.String())
}

func TestErrorStatusWord(t *testing.T) {
	// client errors are reported as "fail"
	w := record(func(c *gin.Context) {
		BadRequest(c, "nope")
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"nope"}`, w.Body.String())

	// server errors as "error"
	w = record(func(c *gin.Context) {
		Error(c, http.StatusInternalServerError, "boom")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"boom"}`, w.Body.String())
}

func TestNotFound(t *testing.T) {
	w := record(func(c *gin.Context) {
		NotFound(c, "Cannot find /missing on this server!")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot find /missing")
}
