package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/auth"
	"github.com/spec-kit/erp-backend/internal/domain"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// newTestApp builds a Fiber app with a stub principal and the same
// error-to-status conversion the real middleware applies.
func newTestApp() *fiber.App {
	app := fiber.New()
	principal := &auth.Principal{User: &domain.User{ID: "user-1", Email: "tester@example.com", IsActive: true}}
	app.Use(func(c *fiber.Ctx) error {
		auth.StorePrincipal(c, principal)
		if err := c.Next(); err != nil {
			derr := apperrors.ToDomainError(err)
			return c.Status(derr.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{
				"code":    derr.Code,
				"message": derr.Message,
			}})
		}
		return nil
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Error.Code
}
