package http

import "github.com/labstack/echo/v4"

// envelope is the uniform response body. Error carries internal detail and
// is only populated in development mode; Details holds field-level
// validation information safe for any environment.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respond(ctx echo.Context, code int, message string, data any) error {
	return ctx.JSON(code, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}
