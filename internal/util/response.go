package util

import (
	"github.com/gin-gonic/gin"
)

// Error kinds, so programmatic clients can branch without string matching.
const (
	KindValidation = "validation"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

// Error writes the uniform error body.
func Error(c *gin.Context, httpStatus int, kind, msg string) {
	c.JSON(httpStatus, gin.H{
		"kind":    kind,
		"message": msg,
	})
}
