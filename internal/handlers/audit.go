package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"mediation_portal/internal/models"
)

const (
	auditDefaultLimit = 100
	auditMaxLimit     = 500
)

// AuditReader is the read side of the audit log.
type AuditReader interface {
	List(ctx context.Context, filter bson.M, limit int64) ([]models.AuditLog, error)
}

type AuditHandler struct {
	store  AuditReader
	expose bool
}

func NewAuditHandler(store AuditReader, exposeErrors bool) *AuditHandler {
	return &AuditHandler{store: store, expose: exposeErrors}
}

// List returns audit entries newest-first, filterable by userId and action.
// Admin only; the gate enforces the role before this runs.
//
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Param userId query string false "Filter by actor id"
// @Param action query string false "Filter by action"
// @Param limit query int false "Max entries (default 100, max 500)"
// @Success 200 {object} map[string]interface{}
// @Router /api/audit-logs [get]
func (h *AuditHandler) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := bson.M{}
		if v := c.Query("userId"); v != "" {
			filter["userId"] = v
		}
		if v := c.Query("action"); v != "" {
			filter["action"] = v
		}

		limit := int64(c.QueryInt("limit", auditDefaultLimit))
		if limit <= 0 {
			limit = auditDefaultLimit
		}
		if limit > auditMaxLimit {
			limit = auditMaxLimit
		}

		items, err := h.store.List(c.Context(), filter, limit)
		if err != nil {
			return serverError(c, err, h.expose)
		}
		return ok(c, items)
	}
}
