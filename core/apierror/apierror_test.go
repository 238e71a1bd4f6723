package apierror

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Forbidden", Forbidden("nope"), 403, "rest_forbidden"},
		{"Unauthorized", Unauthorized("login"), 401, "rest_not_logged_in"},
		{"NotFound", NotFound("rest_user_invalid_id", "Invalid user ID."), 404, "rest_user_invalid_id"},
		{"Invalid", Invalid("Invalid parameter(s): height", map[string]string{"height": "must be positive"}), 400, "rest_invalid_param"},
		{"FiberError", fiber.ErrMethodNotAllowed, 405, "rest_method_not_allowed"},
		{"PlainError", errors.New("boom"), 500, "rest_internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: Handler})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body Error
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Data.Status)
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("rest_save_failed", "Could not save profile.", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "rest_forbidden: x", Forbidden("x").Error())
}

func TestInvalid_Params(t *testing.T) {
	err := Invalid("bad", map[string]string{"age": "too young"})
	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"rest_invalid_param","message":"bad","data":{"status":400,"params":{"age":"too young"}}}`, string(raw))
}
