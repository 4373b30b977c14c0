package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/core/domain/services"
	"orderintake/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to an HTTP status and client-facing detail.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrNoSuitableCourier):
		return http.StatusBadRequest, noSuitableCourierDetail
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, orderNotFoundDetail
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorDetail
	}
}

// writeError renders err as an ErrorResponse. Server errors are logged with the
// request id since their detail is not sent to the client.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	code, detail := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
	}
	return c.JSON(code, ErrorResponse{Detail: detail})
}

// httpErrorHandler renders errors produced by echo itself (unknown route, wrong
// method, panics turned into errors) in the same {detail} shape.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := internalErrorDetail

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				detail = msg
			} else {
				detail = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "path", c.Path(), "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorResponse{Detail: detail})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Writing error response failed", "error", writeErr)
		}
	}
}
