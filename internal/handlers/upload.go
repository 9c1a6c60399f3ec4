package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"mediation_portal/internal/audit"
	"mediation_portal/internal/middleware"
	"mediation_portal/internal/models"
)

type UploadHandler struct {
	dir    string
	audit  *audit.Recorder
	expose bool
}

func NewUploadHandler(dir string, rec *audit.Recorder, exposeErrors bool) *UploadHandler {
	return &UploadHandler{dir: dir, audit: rec, expose: exposeErrors}
}

// Post stores an uploaded file under a uuid-prefixed name and returns the
// public URL. Admin only; the gate guards the path.
//
// @Summary Upload a file
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{}
// @Router /api/upload [post]
func (h *UploadHandler) Post() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "No file uploaded")
		}

		name := uuid.New().String() + "_" + sanitizeFilename(file.Filename)
		if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
			return serverError(c, err, h.expose)
		}

		h.audit.Record(models.AuditLog{
			UserID:   c.Get(middleware.HeaderUserID),
			Action:   "upload",
			Resource: "file",
			Details:  bson.M{"name": name, "size": file.Size},
		})

		return created(c, fiber.Map{
			"url":  "/uploads/" + name,
			"name": name,
			"size": file.Size,
		})
	}
}

// sanitizeFilename keeps the base name and drops path separators and other
// characters that have no business in a served filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
