package http

import (
	"errors"
	"log/slog"
	"net/http"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned for a missing, malformed or expired bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps use case errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, queries.ErrWrongCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return c.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}
	return c.JSON(code, Error{Code: code, Message: err.Error()})
}
