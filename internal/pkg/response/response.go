package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends a 200 envelope: {"status":"success", ...fields}.
func Success(c *gin.Context, fields gin.H) {
	withStatus(c, http.StatusOK, fields)
}

// Created sends a 201 envelope.
func Created(c *gin.Context, fields gin.H) {
	withStatus(c, http.StatusCreated, fields)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func withStatus(c *gin.Context, code int, fields gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(code, body)
}

// Error sends an error envelope. 4xx codes report status "fail", everything
// else "error", which is the shape the web client switches on.
func Error(c *gin.Context, code int, message string) {
	status := "error"
	if code >= 400 && code < 500 {
		status = "fail"
	}
	c.AbortWithStatusJSON(code, gin.H{"status": status, "message": message})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
