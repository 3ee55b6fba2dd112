package middleware

import (
	"net/http"

	"africahub/pkg/logger"

	jsonres "africahub/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler: echo errors keep their status,
// everything else collapses to a 500 with the error message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	codeLabel := "REQUEST_ERROR"
	if code >= http.StatusInternalServerError {
		codeLabel = "INTERNAL_ERROR"
		logger.Error("Unhandled request error", "path", c.Path(), "error", err)
	}

	if err := c.JSON(code, jsonres.Error(codeLabel, message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
