// Package response implements the uniform payload envelope used by every
// endpoint: {"status": "success"|"failed"|"error", "data"|"message": ...}.
package response

import "github.com/labstack/echo/v4"

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// SuccessBody is the shape of a successful response.
type SuccessBody struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// FailureBody is the shape of a failed or errored response.
type FailureBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success writes a success envelope with the given HTTP code and data.
func Success(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, SuccessBody{Status: StatusSuccess, Data: data})
}

// Failed writes a "failed" envelope, used for validation and domain-rule
// rejections the client can act on.
func Failed(c echo.Context, code int, message string) error {
	return c.JSON(code, FailureBody{Status: StatusFailed, Message: message})
}

// Error writes an "error" envelope, used for unexpected server failures.
func Error(c echo.Context, code int, message string) error {
	return c.JSON(code, FailureBody{Status: StatusError, Message: message})
}
