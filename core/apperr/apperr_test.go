package apperr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"Validation", Validation("bad %s", "input"), KindValidation, 400},
		{"NotFound", NotFound("Equipment not found"), KindNotFound, 404},
		{"Conflict", Conflict(nil, "Only 1 available"), KindConflict, 409},
		{"Forbidden", Forbidden(), KindForbidden, 403},
		{"Unauthorized", Unauthorized("missing key"), KindUnauthorized, 401},
		{"Internal", Internal(fmt.Errorf("disk"), "save failed"), KindInternal, 500},
		{"Plain", fmt.Errorf("boom"), KindInternal, 500},
		{"Wrapped", fmt.Errorf("outer: %w", NotFound("x")), KindNotFound, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, Status(KindOf(tt.err)))
			assert.True(t, Is(tt.err, tt.kind))
		})
	}
	assert.False(t, Is(nil, KindInternal))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestInternal_KeepsCause(t *testing.T) {
	root := errors.New("connection reset")
	err := Internal(root, "checkout failed")

	assert.ErrorIs(t, err, root)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, root, errors.Cause(err))
}

func TestBody(t *testing.T) {
	assert.Equal(t, fiber.Map{"error": InternalMessage}, Body(Internal(errors.New("sql: tx done"), "x")))
	assert.Equal(t, fiber.Map{"error": InternalMessage}, Body(errors.New("raw")))
	assert.Equal(t, fiber.Map{"error": ForbiddenMessage}, Body(Forbidden()))

	details := map[string]any{"requested": 3, "available": 1}
	assert.Equal(t, fiber.Map{"error": "Only 1 available", "details": details}, Body(Conflict(details, "Only %d available", 1)))
}

func TestWrite(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return Write(c, Conflict(map[string]any{"available": 0}, "none left"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "none left", body["error"])
	assert.Equal(t, float64(0), body["details"].(map[string]any)["available"])
}
