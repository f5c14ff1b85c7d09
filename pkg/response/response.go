package response

import "github.com/gin-gonic/gin"

// Success sends a 200 response with the payload as the body
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Created sends a 201 response with the payload as the body
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, data)
}

// Error sends an error response with a plain error message
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, 500, message)
}
