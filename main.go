// @title Mediation Portal API
// @version 1.0
// @description Content and admin API for the mediation services website
// @BasePath /

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	_ "mediation_portal/docs"

	"mediation_portal/internal/audit"
	"mediation_portal/internal/config"
	"mediation_portal/internal/database"
	"mediation_portal/internal/logger"
	"mediation_portal/internal/middleware"
	"mediation_portal/internal/repository"
	"mediation_portal/internal/revalidate"
	"mediation_portal/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Env, cfg.LogLevel); err != nil {
		panic(err)
	}
	log := logger.Get()
	defer log.Sync()

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("mongo connect failed", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("db", cfg.Mongo.DBName))

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	contentStore := repository.NewContentStore(db, cfg.Mongo.UseTransactions)
	userStore := repository.NewUserStore(db)
	auditStore := repository.NewAuditStore(db)
	recorder := audit.NewRecorder(auditStore, log)
	reval := revalidate.NewClient(cfg.Revalidate, log)

	if cfg.Seed.AdminEmail != "" && cfg.Seed.AdminPassword != "" {
		seeded, err := userStore.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
		if err != nil {
			log.Fatal("admin seed failed", zap.Error(err))
		}
		if seeded {
			log.Info("bootstrap admin created", zap.String("email", cfg.Seed.AdminEmail))
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          apiErrorHandler,
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.Metrics())
	app.Use(middleware.Gate(cfg.JWT.Secret))

	routes.Register(app, routes.Deps{
		Cfg:      cfg,
		DB:       db,
		Content:  contentStore,
		Users:    userStore,
		AuditLog: auditStore,
		Recorder: recorder,
		Reval:    reval,
	})

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Disconnect(disconnectCtx); err != nil {
		log.Warn("mongo disconnect", zap.Error(err))
	}
}

// apiErrorHandler keeps stray fiber errors inside the JSON envelope instead
// of the framework's plain-text page.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := "Internal server error"
	if code < fiber.StatusInternalServerError {
		msg = err.Error()
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "error": msg})
}
