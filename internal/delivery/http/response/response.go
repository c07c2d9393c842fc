// Package response defines the HTTP response envelope.
package response

import "github.com/labstack/echo/v4"

// Body is the envelope for successful responses.
type Body struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the envelope for error responses. Stack is populated outside
// of production only.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Body{
		Message: message,
		Data:    data,
	})
}
