package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Bodies mirror the original frontend contract: payloads are returned as-is,
// failures carry a single short "error" field, acks a "message" field.

// Error trả về JSON error body với message ngắn gọn
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Message trả về ack body {"message": ...}
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// InternalError logs the underlying error and returns an opaque 500 body.
// Internal details never leak to the client.
func InternalError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("internal error")

	Error(c, http.StatusInternalServerError, "internal server error")
}
