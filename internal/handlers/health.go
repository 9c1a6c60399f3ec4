package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mediation_portal/internal/database"
)

type HealthHandler struct {
	db     *database.Mongo
	start  time.Time
	expose bool
}

func NewHealthHandler(db *database.Mongo, exposeErrors bool) *HealthHandler {
	return &HealthHandler{db: db, start: time.Now(), expose: exposeErrors}
}

// Live is the liveness probe.
//
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Live() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return ok(c, fiber.Map{
			"status": "ok",
			"uptime": time.Since(h.start).String(),
		})
	}
}

// DB pings the database.
//
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health/db [get]
func (h *HealthHandler) DB() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.db.Ping(c.Context()); err != nil {
			return serverError(c, err, h.expose)
		}
		return ok(c, fiber.Map{"status": "ok", "database": "reachable"})
	}
}
