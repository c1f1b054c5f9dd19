package utils

import "github.com/gin-gonic/gin"

// JSONError writes the API error envelope: {"error": msg}.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// JSONErrorDetails attaches the underlying cause for debugging.
func JSONErrorDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, gin.H{"error": message, "details": details})
}
