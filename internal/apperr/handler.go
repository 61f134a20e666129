package apperr

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Body is the error payload every failed request returns.
type Body struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	ErrorCode string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// EchoHandler converts errors escaping handlers into the structured body.
// Unclassified errors become 500 without leaking their message.
func EchoHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := CodeInternal
		msg := "an unexpected error occurred"

		switch e := err.(type) {
		case *Error:
			status = e.Status
			code = e.Code
			msg = e.Message
		case *echo.HTTPError:
			status = e.Code
			msg = http.StatusText(status)
			switch status {
			case http.StatusBadRequest:
				code = CodeValidation
			case http.StatusUnauthorized:
				code = CodeAuthorization
			case http.StatusForbidden:
				code = CodeAccessDenied
			case http.StatusNotFound:
				code = CodeNotFound
			default:
				code = CodeInternal
			}
			if s, ok := e.Message.(string); ok && s != "" {
				msg = s
			}
		default:
			log.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
		}

		body := Body{
			Timestamp: time.Now().UTC(),
			Status:    status,
			ErrorCode: code,
			Message:   msg,
			Path:      c.Request().URL.Path,
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			log.Error("error response write failed", "error", werr)
		}
	}
}
