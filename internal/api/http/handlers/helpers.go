package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/auth"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// queryInt parses an integer query parameter, returning the fallback on
// absence or garbage.
func queryInt(c *fiber.Ctx, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

// queryBool parses a boolean query parameter.
func queryBool(c *fiber.Ctx, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return val
}

// optionalQuery returns a pointer to the query value, nil when absent.
func optionalQuery(c *fiber.Ctx, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// requirePrincipal pulls the authenticated caller off the request.
func requirePrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return principal, nil
}

// actorRef returns a pointer to the caller's id for created_by columns.
func actorRef(principal *auth.Principal) *string {
	id := principal.UserID()
	if id == "" {
		return nil
	}
	return &id
}
