package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mediation_portal/internal/models"
	"mediation_portal/internal/token"
)

// Identity headers the gate injects for downstream handlers. Handlers trust
// these without re-verifying the token, so the gate must run on every
// protected path and must overwrite anything the client sent.
const (
	HeaderUserID   = "x-user-id"
	HeaderUserRole = "x-user-role"
	CookieName     = "admin_token"
	AdminLoginPath = "/admin/login"
)

var writeMethods = map[string]bool{
	fiber.MethodPost:   true,
	fiber.MethodPut:    true,
	fiber.MethodDelete: true,
	fiber.MethodPatch:  true,
}

// Gate authenticates and authorizes every admin-surface and content request
// before any route handler runs:
//
//  1. OPTIONS passes straight through (CORS preflight).
//  2. /admin/* pages (except /admin/login) need a valid cookie token or get
//     redirected to the login page.
//  3. /api/content/* and /api/upload/*: reads are public, writes need an
//     admin token (bearer header or cookie).
//  4. /api/audit-logs needs an admin token for any method.
//  5. /api/auth/me and /api/auth/profile need any valid token.
//
// On success the verified identity is stamped into x-user-id / x-user-role.
func Gate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Never trust client-supplied identity headers.
		c.Request().Header.Del(HeaderUserID)
		c.Request().Header.Del(HeaderUserRole)

		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		path := c.Path()

		if isAdminPage(path) {
			tok := c.Cookies(CookieName)
			if tok == "" {
				return c.Redirect(AdminLoginPath, fiber.StatusFound)
			}
			claims, err := token.Parse(secret, tok)
			if err != nil {
				c.ClearCookie(CookieName)
				return c.Redirect(AdminLoginPath, fiber.StatusFound)
			}
			inject(c, claims)
			return c.Next()
		}

		guarded := isContentPath(path) || isUploadPath(path)
		adminOnly := isAuditPath(path)
		authOnly := isAuthSelfPath(path)
		if !guarded && !adminOnly && !authOnly {
			return c.Next()
		}

		tok := bearerOrCookie(c)
		if tok == "" {
			// Public reads on content routes pass as anonymous.
			if guarded && !writeMethods[c.Method()] {
				return c.Next()
			}
			return unauthorized(c, "Authentication required")
		}

		claims, err := token.Parse(secret, tok)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		needsAdmin := adminOnly || (guarded && writeMethods[c.Method()])
		if needsAdmin && claims.Role != models.RoleAdmin {
			return forbidden(c, "Admin access required")
		}

		inject(c, claims)
		return c.Next()
	}
}

func inject(c *fiber.Ctx, claims *token.Claims) {
	c.Request().Header.Set(HeaderUserID, claims.Subject)
	c.Request().Header.Set(HeaderUserRole, claims.Role)
}

func bearerOrCookie(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return c.Cookies(CookieName)
}

func isAdminPage(path string) bool {
	if path != "/admin" && !strings.HasPrefix(path, "/admin/") {
		return false
	}
	return strings.TrimRight(path, "/") != AdminLoginPath
}

func isContentPath(path string) bool {
	return strings.HasPrefix(path, "/api/content/")
}

func isUploadPath(path string) bool {
	return path == "/api/upload" || strings.HasPrefix(path, "/api/upload/")
}

func isAuditPath(path string) bool {
	return path == "/api/audit-logs" || strings.HasPrefix(path, "/api/audit-logs/")
}

func isAuthSelfPath(path string) bool {
	return path == "/api/auth/me" || path == "/api/auth/profile"
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": msg})
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": msg})
}
