// Package handler contains the echo handlers. Each follows the same flow:
// bind, validate, call the service, shape the envelope. Domain errors are
// translated locally; anything else becomes a generic 500.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fitcoach/internal/auth"
	"fitcoach/internal/errors"
	"fitcoach/internal/response"
)

// claims returns the authenticated caller's claims placed by the JWT middleware.
func claims(c echo.Context) (*auth.Claims, error) {
	cl, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return cl, nil
}

// respondError maps a domain error onto the envelope.
func respondError(c echo.Context, err error) error {
	code, status, msg := errors.Map(err)
	if status == response.StatusError {
		return response.Error(c, code, msg)
	}
	return response.Failed(c, code, msg)
}

// courseTimeLayouts are the accepted start_at/end_at formats.
var courseTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseCourseTime parses a course timestamp in any accepted layout.
func parseCourseTime(s string) (time.Time, bool) {
	for _, layout := range courseTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
