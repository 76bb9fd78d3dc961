package http

import (
	"errors"
	"net/http"

	"printshop/internal/adapters/out/disk"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail writes an error envelope. Internal error detail reaches the client
// only in development mode; it is always logged upstream.
func (s *Server) fail(ctx echo.Context, code int, message string, cause error) error {
	body := envelope{Success: false, Message: message}
	if s.devMode && cause != nil {
		body.Error = cause.Error()
	}
	return ctx.JSON(code, body)
}

// failWithDetails is fail plus field-level validation detail, which is
// client-safe in every environment.
func (s *Server) failWithDetails(
	ctx echo.Context, code int, message string, cause error, details any,
) error {
	body := envelope{Success: false, Message: message, Details: details}
	if s.devMode && cause != nil {
		body.Error = cause.Error()
	}
	return ctx.JSON(code, body)
}

// respondError maps application errors onto the HTTP contract:
// invalid input and storage-limit violations are the client's fault,
// missing objects are 404, everything else is an internal fault.
func (s *Server) respondError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.fail(ctx, http.StatusNotFound, message, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, disk.ErrUnsupportedFileType),
		errors.Is(err, disk.ErrFileTooLarge),
		errors.Is(err, disk.ErrTooManyFiles):
		return s.fail(ctx, http.StatusBadRequest, message, err)
	case errors.Is(err, ports.ErrInvalidAdminToken):
		return s.fail(ctx, http.StatusUnauthorized, message, err)
	default:
		return s.fail(ctx, http.StatusInternalServerError, message, err)
	}
}
