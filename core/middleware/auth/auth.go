package auth

import (
	"equipment-tracker/core/apperr"
	"equipment-tracker/core/server"

	"github.com/gofiber/fiber/v2"
)

// Header is the request header carrying the API key.
const Header = "X-API-Key"

const localsKey = "caller_role"

// Config holds the keys the middleware resolves roles from.
type Config struct {
	AdminKey  string
	MasterKey string
}

// New resolves the caller role from the API key and stores it on the context.
// Requests without a known key continue as public callers.
func New(cfg Config) fiber.Handler {
	resolver := server.Config{AdminKey: cfg.AdminKey, MasterKey: cfg.MasterKey}
	return func(c *fiber.Ctx) error {
		c.Locals(localsKey, resolver.ResolveRole(c.Get(Header)))
		return c.Next()
	}
}

// RequireRole rejects callers below min with 401.
func RequireRole(min server.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !RoleFrom(c).AtLeast(min) {
			return apperr.Write(c, apperr.Unauthorized("Invalid or missing API key"))
		}
		return c.Next()
	}
}

// RoleFrom returns the role resolved for this request.
func RoleFrom(c *fiber.Ctx) server.Role {
	if r, ok := c.Locals(localsKey).(server.Role); ok {
		return r
	}
	return server.RolePublic
}
