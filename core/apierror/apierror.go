package apierror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error is a REST error in the shape WordPress returns from WP_Error:
//
//	{"code": "rest_forbidden", "message": "...", "data": {"status": 403}}
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    Data   `json:"data"`

	err error
}

// Data carries the HTTP status and, for validation failures, per-field messages.
type Data struct {
	Status int               `json:"status"`
	Params map[string]string `json:"params,omitempty"`
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// New builds an error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Code: code, Message: message, Data: Data{Status: status}}
}

// Wrap attaches an underlying cause that is logged but never serialised.
func (e *Error) Wrap(err error) *Error {
	e.err = err
	return e
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, "rest_not_logged_in", message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, "rest_forbidden", message)
}

func NotFound(code, message string) *Error {
	return New(fiber.StatusNotFound, code, message)
}

// Invalid reports a validation failure with per-field messages.
func Invalid(message string, params map[string]string) *Error {
	e := New(fiber.StatusBadRequest, "rest_invalid_param", message)
	e.Data.Params = params
	return e
}

func Internal(code, message string, err error) *Error {
	return New(fiber.StatusInternalServerError, code, message).Wrap(err)
}

// Handler is the fiber.Config ErrorHandler writing every failure as a WordPress error.
func Handler(c *fiber.Ctx, err error) error {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			apiErr = New(fe.Code, codeForStatus(fe.Code), fe.Message)
		} else {
			apiErr = Internal("rest_internal_error", "An unexpected error occurred.", err)
		}
	}
	return c.Status(apiErr.Data.Status).JSON(apiErr)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "rest_no_route"
	case fiber.StatusMethodNotAllowed:
		return "rest_method_not_allowed"
	case fiber.StatusUnauthorized:
		return "rest_not_logged_in"
	case fiber.StatusForbidden:
		return "rest_forbidden"
	case fiber.StatusBadRequest:
		return "rest_invalid_request"
	default:
		return "rest_error"
	}
}
