package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"mediation_portal/internal/middleware"
	"mediation_portal/internal/models"
	"mediation_portal/internal/repository"
	"mediation_portal/internal/token"
)

var validate = validator.New()

// UserStore is the user lookup/update surface behind the auth handlers.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, set bson.M) error
}

type AuthHandler struct {
	users  UserStore
	secret string
	ttl    time.Duration
	expose bool
}

func NewAuthHandler(users UserStore, secret string, ttl time.Duration, exposeErrors bool) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, ttl: ttl, expose: exposeErrors}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin-dashboard user and issues a signed token.
//
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid body")
		}
		email := strings.TrimSpace(strings.ToLower(req.Email))
		if email == "" || req.Password == "" {
			return badRequest(c, "Email and password are required")
		}

		u, err := h.users.FindByEmail(c.Context(), email)
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c, "Invalid email or password")
		}
		if err != nil {
			return serverError(c, err, h.expose)
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
			return unauthorized(c, "Invalid email or password")
		}
		if !u.IsActive {
			return forbidden(c, "Account is deactivated")
		}

		signed, err := token.Sign(h.secret, u.ID.Hex(), u.Role, h.ttl)
		if err != nil {
			return serverError(c, err, h.expose)
		}

		// The admin UI reads this cookie client-side; kept non-HttpOnly to
		// match the dashboard it serves.
		c.Cookie(&fiber.Cookie{
			Name:     middleware.CookieName,
			Value:    signed,
			Path:     "/",
			Expires:  time.Now().Add(h.ttl),
			HTTPOnly: false,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		return ok(c, fiber.Map{"token": signed, "user": u})
	}
}

// Me returns the authenticated user, resolved from the gate-injected id.
//
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Get(middleware.HeaderUserID))
		if err != nil {
			return unauthorized(c, "Authentication required")
		}
		u, err := h.users.FindByID(c.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c, "Authentication required")
		}
		if err != nil {
			return serverError(c, err, h.expose)
		}
		return ok(c, u)
	}
}

type profileReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfile changes name, email and/or password of the caller.
//
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Get(middleware.HeaderUserID))
		if err != nil {
			return unauthorized(c, "Authentication required")
		}

		var req profileReq
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid body")
		}

		set := bson.M{}
		if req.Name != "" {
			set["name"] = strings.TrimSpace(req.Name)
		}
		if req.Email != "" {
			email := strings.TrimSpace(strings.ToLower(req.Email))
			if err := validate.Var(email, "email"); err != nil {
				return badRequest(c, "Invalid email address")
			}
			set["email"] = email
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return serverError(c, err, h.expose)
			}
			set["password_hash"] = string(hash)
		}
		if len(set) == 0 {
			return badRequest(c, "Nothing to update")
		}

		if err := h.users.UpdateProfile(c.Context(), id, set); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Not found")
			}
			return serverError(c, err, h.expose)
		}

		u, err := h.users.FindByID(c.Context(), id)
		if err != nil {
			return serverError(c, err, h.expose)
		}
		return okMessage(c, u, "Profile updated")
	}
}

// Logout clears the session cookie.
//
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.ClearCookie(middleware.CookieName)
		return okMessage(c, nil, "Logged out")
	}
}
