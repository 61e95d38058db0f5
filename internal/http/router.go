package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nik-parser/internal/config"
	"nik-parser/internal/http/handler"
	"nik-parser/internal/http/middleware"
	"nik-parser/internal/models"
	"nik-parser/internal/realtime"
	"nik-parser/internal/reference"
)

type Deps struct {
	Loader *reference.Loader
	Hub    *realtime.Hub
	Clock  func() time.Time
	Logger *slog.Logger
}

func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:       config.GetEnvBool("APP_PREFORK", false),
		CaseSensitive: true,
		StrictRouting: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))

	nikHandler := handler.NewNIKHandler(deps.Loader, deps.Clock, deps.Logger)
	refHandler := handler.NewReferenceHandler(deps.Loader, deps.Hub, deps.Logger)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "NIK parser API jalan",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/nik/:nik", nikHandler.ParseNIK)
	api.Post("/nik/parse", nikHandler.ParseBatch)

	api.Get("/reference/status", refHandler.Status)
	api.Get("/reference/provinces", refHandler.ListProvinces)
	api.Get("/reference/provinces/:id/regencies", refHandler.ListRegencies)
	api.Get("/reference/regencies/:id/districts", refHandler.ListDistricts)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/reference", websocket.New(refHandler.WebSocket))

	admin := app.Group("/admin")
	admin.Post("/login", handler.Login)
	admin.Post("/logout", middleware.JWTAuth(), handler.Logout)
	admin.Post("/reference/reload",
		middleware.AdminAuth(),
		middleware.RoleAuth(models.RoleAdmin),
		refHandler.Reload,
	)

	return app
}
