package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mediation_portal/internal/audit"
	"mediation_portal/internal/config"
	"mediation_portal/internal/content"
	"mediation_portal/internal/database"
	"mediation_portal/internal/handlers"
	"mediation_portal/internal/repository"
	"mediation_portal/internal/revalidate"
)

// Deps carries everything the routes need, wired once in main.
type Deps struct {
	Cfg      *config.Config
	DB       *database.Mongo
	Content  *repository.ContentStore
	Users    *repository.UserStore
	AuditLog *repository.AuditStore
	Recorder *audit.Recorder
	Reval    *revalidate.Client
}

// Register mounts every route on the app. The auth gate must already be
// installed on the app before this is called.
func Register(app *fiber.App, d Deps) {
	expose := !d.Cfg.IsProduction()

	authH := handlers.NewAuthHandler(d.Users, d.Cfg.JWT.Secret, time.Duration(d.Cfg.JWT.ExpirationHours)*time.Hour, expose)
	contentH := handlers.NewContentHandler(d.Content, d.Recorder, d.Reval, expose)
	auditH := handlers.NewAuditHandler(d.AuditLog, expose)
	healthH := handlers.NewHealthHandler(d.DB, expose)
	uploadH := handlers.NewUploadHandler(d.Cfg.UploadDir, d.Recorder, expose)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", authH.Login())
	authGroup.Post("/logout", authH.Logout())
	authGroup.Get("/me", authH.Me())
	authGroup.Put("/profile", authH.UpdateProfile())

	contentGroup := api.Group("/content")
	for _, e := range content.All() {
		g := contentGroup.Group("/" + e.Segment)
		if e.Singleton {
			g.Get("/", contentH.GetSingleton(e))
			g.Put("/", contentH.PutSingleton(e))
			continue
		}
		g.Get("/", contentH.Get(e))
		g.Post("/", contentH.Post(e))
		g.Put("/", contentH.Put(e))
		g.Delete("/", contentH.Delete(e))
	}

	api.Get("/audit-logs", auditH.List())

	api.Post("/upload", uploadH.Post())
	app.Static("/uploads", d.Cfg.UploadDir)

	api.Get("/health", healthH.Live())
	api.Get("/health/db", healthH.DB())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", swagger.HandlerDefault)
}
