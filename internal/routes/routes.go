package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"socialgraph/configs"
	"socialgraph/internal/handlers"
	"socialgraph/internal/middleware"
	"socialgraph/services"
)

type Deps struct {
	Service *services.Service
	Config  configs.Config
	Logger  *zap.Logger
}

// NewApp builds the fiber app with the middleware chain and every route.
func NewApp(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:      "socialgraph",
		Immutable:    true,
		ErrorHandler: handlers.ErrorHandler(d.Logger),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(d.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	Setup(app, d)
	return app
}

// Setup mounts every route group on app.
func Setup(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	if d.Config.EnableDocs {
		app.Get("/docs/*", swagger.HandlerDefault)
	}

	api := app.Group("/api")
	SetupUserRoutes(api, d.Service)
	SetupPostRoutes(api, d.Service)
	SetupFollowRoutes(api, d.Service)
	SetupLikeRoutes(api, d.Service)

	if d.Config.EnableTestRoutes {
		d.Logger.Warn("test routes enabled")
		SetupTestRoutes(api, d.Service)
	}

	if d.Config.PublicDir != "" {
		app.Static("/", d.Config.PublicDir)
	}
}
