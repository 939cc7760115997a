// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the flat error body every endpoint uses. Clients branch on the
// HTTP status only; no machine-readable error codes are exposed.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

func Unauthenticated(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}

func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}

func Upstream(c *gin.Context, msg string) {
	Error(c, http.StatusBadGateway, msg)
}
