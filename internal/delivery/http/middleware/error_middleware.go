package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	domainerrors "authgate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors bubbling out of handlers into the HTTP
// error contract. It is registered as Echo's HTTPErrorHandler, so handlers and
// middleware simply return typed errors and this is the single place that
// turns them into responses.
type ErrorMiddleware struct {
	logger *slog.Logger
	cfg    *config.Config
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if !appErr.Operational() {
			logger.Error("Unexpected application error",
				slog.String("errorCode", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.Any("error", err),
			)
		}

		m.writeError(c, appErr.HTTPCode(), appErr.Message(), err)

		return
	}

	// Echo raises its own HTTPError for routing-level failures.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if httpErr.Code == http.StatusNotFound {
			message = fmt.Sprintf("Route %s not found", c.Request().URL.Path)
		}

		m.writeError(c, httpErr.Code, message, err)

		return
	}

	logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)

	m.writeError(c, http.StatusInternalServerError, "Internal Server Error", err)
}

// writeError sends the error body. The stack trace is attached outside of
// production only.
func (m *ErrorMiddleware) writeError(c echo.Context, statusCode int, message string, err error) {
	body := response.ErrorBody{Message: message}
	if !m.cfg.IsProduction() {
		body.Stack = fmt.Sprintf("%+v", err)
	}

	if writeErr := c.JSON(statusCode, body); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
