package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"mediation_portal/internal/audit"
	"mediation_portal/internal/content"
	"mediation_portal/internal/middleware"
	"mediation_portal/internal/models"
	"mediation_portal/internal/repository"
	"mediation_portal/internal/revalidate"
)

// ContentStore is the storage surface the generic handlers run against.
// repository.ContentStore implements it; tests swap in a memory fake.
type ContentStore interface {
	List(ctx context.Context, e *content.Entry, q repository.ListQuery) ([]bson.M, error)
	GetByID(ctx context.Context, e *content.Entry, id bson.ObjectID) (bson.M, error)
	Insert(ctx context.Context, e *content.Entry, doc bson.M) (bson.M, error)
	Update(ctx context.Context, e *content.Entry, id bson.ObjectID, set bson.M) error
	Delete(ctx context.Context, e *content.Entry, id bson.ObjectID) error
	GetSingleton(ctx context.Context, e *content.Entry) (bson.M, error)
	UpsertSingleton(ctx context.Context, e *content.Entry, set bson.M) (bson.M, error)
}

// ContentHandler serves every content type through the registry: one GET /
// POST / PUT / DELETE set per registered entry.
type ContentHandler struct {
	store  ContentStore
	audit  *audit.Recorder
	reval  *revalidate.Client
	expose bool
}

func NewContentHandler(store ContentStore, rec *audit.Recorder, reval *revalidate.Client, exposeErrors bool) *ContentHandler {
	return &ContentHandler{store: store, audit: rec, reval: reval, expose: exposeErrors}
}

// Get lists documents. Public callers see active documents only; an admin
// (per the gate-injected role header) may pass ?all=true to include inactive
// ones. ?id= fetches a single document instead.
//
// @Summary List content documents
// @Tags content
// @Produce json
// @Param all query bool false "Include inactive documents (admin only)"
// @Param limit query int false "Maximum number of documents"
// @Success 200 {object} map[string]interface{}
// @Router /api/content/{type} [get]
func (h *ContentHandler) Get(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if idHex := c.Query("id"); idHex != "" {
			id, err := bson.ObjectIDFromHex(idHex)
			if err != nil {
				return badRequest(c, "Invalid id")
			}
			doc, err := h.store.GetByID(c.Context(), e, id)
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Not found")
			}
			if err != nil {
				return serverError(c, err, h.expose)
			}
			// Inactive documents are admin-only, same as on the list path.
			if c.Get(middleware.HeaderUserRole) != models.RoleAdmin {
				if active, _ := doc["isActive"].(bool); !active {
					return notFound(c, "Not found")
				}
			}
			return ok(c, doc)
		}

		filter := bson.M{}
		showAll := c.Query("all") == "true" && c.Get(middleware.HeaderUserRole) == models.RoleAdmin
		if !showAll {
			filter["isActive"] = true
		}
		for _, key := range e.Filters {
			v := c.Query(key)
			if v == "" {
				continue
			}
			if n, err := strconv.Atoi(v); err == nil && key == "year" {
				filter[key] = n
			} else {
				filter[key] = v
			}
		}

		var limit int64
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 0 {
				return badRequest(c, "Invalid limit")
			}
			limit = n
		}

		items, err := h.store.List(c.Context(), e, repository.ListQuery{Filter: filter, Limit: limit})
		if err != nil {
			return serverError(c, err, h.expose)
		}
		return ok(c, items)
	}
}

// Post creates a document.
//
// @Summary Create a content document
// @Tags content
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /api/content/{type} [post]
func (h *ContentHandler) Post(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := e.Schema().DecodeCreate(c.Body())
		if err != nil {
			return payloadError(c, err, h.expose)
		}

		stored, err := h.store.Insert(c.Context(), e, doc)
		if err != nil {
			return serverError(c, err, h.expose)
		}

		h.record(c, "create", e, stored["_id"])
		h.reval.NotifyPaths(c.Context(), e.Revalidate)
		return created(c, stored)
	}
}

// Put applies a partial update. The body must carry the document _id.
//
// @Summary Update a content document
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/content/{type} [put]
func (h *ContentHandler) Put(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idHex, set, err := e.Schema().DecodeUpdate(c.Body())
		if err != nil {
			return payloadError(c, err, h.expose)
		}
		if idHex == "" {
			return badRequest(c, "Document id is required")
		}
		id, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			return badRequest(c, "Invalid id")
		}

		if err := h.store.Update(c.Context(), e, id, set); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Not found")
			}
			return serverError(c, err, h.expose)
		}

		doc, err := h.store.GetByID(c.Context(), e, id)
		if err != nil {
			return serverError(c, err, h.expose)
		}

		h.record(c, "update", e, id)
		h.reval.NotifyPaths(c.Context(), e.Revalidate)
		return okMessage(c, doc, "Updated")
	}
}

// Delete removes a document by ?id=.
//
// @Summary Delete a content document
// @Tags content
// @Produce json
// @Param id query string true "Document id"
// @Success 200 {object} map[string]interface{}
// @Router /api/content/{type} [delete]
func (h *ContentHandler) Delete(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idHex := c.Query("id")
		if idHex == "" {
			return badRequest(c, "Document id is required")
		}
		id, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			return badRequest(c, "Invalid id")
		}

		if err := h.store.Delete(c.Context(), e, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c, "Not found")
			}
			return serverError(c, err, h.expose)
		}

		h.record(c, "delete", e, id)
		h.reval.NotifyPaths(c.Context(), e.Revalidate)
		return okMessage(c, nil, "Deleted")
	}
}

// GetSingleton reads a config document; absence is a null payload, not an
// error.
func (h *ContentHandler) GetSingleton(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.store.GetSingleton(c.Context(), e)
		if errors.Is(err, repository.ErrNotFound) {
			return ok(c, nil)
		}
		if err != nil {
			return serverError(c, err, h.expose)
		}
		return ok(c, doc)
	}
}

// PutSingleton upserts the config document on first write.
func (h *ContentHandler) PutSingleton(e *content.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, set, err := e.Schema().DecodeUpdate(c.Body())
		if err != nil {
			return payloadError(c, err, h.expose)
		}

		doc, err := h.store.UpsertSingleton(c.Context(), e, set)
		if err != nil {
			return serverError(c, err, h.expose)
		}

		h.record(c, "update", e, doc["_id"])
		h.reval.NotifyPaths(c.Context(), e.Revalidate)
		return okMessage(c, doc, "Updated")
	}
}

func (h *ContentHandler) record(c *fiber.Ctx, action string, e *content.Entry, id any) {
	resourceID := ""
	if oid, ok := id.(bson.ObjectID); ok {
		resourceID = oid.Hex()
	}
	h.audit.Record(models.AuditLog{
		UserID:     c.Get(middleware.HeaderUserID),
		Action:     action,
		Resource:   e.Resource,
		ResourceID: resourceID,
		Details:    bson.M{"path": c.Path(), "method": c.Method()},
	})
}

func payloadError(c *fiber.Ctx, err error, expose bool) error {
	var verr *content.ValidationError
	if errors.As(err, &verr) {
		return badRequest(c, verr.Reason)
	}
	return serverError(c, err, expose)
}
