// Package routers assembles the Fiber application.
package routers

import (
	"strings"

	"careerhub/config"
	"careerhub/middleware"
	"careerhub/routers/adminRoutes"
	"careerhub/routers/authRoutes"
	"careerhub/routers/certificationRoutes"
	"careerhub/routers/courseRoutes"
	"careerhub/routers/englishRoutes"
	"careerhub/routers/mediaRoutes"
	"careerhub/routers/universityRoutes"
	"careerhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the application with the shared middleware stack and every route
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "careerhub",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    utils.MaxUploadSize + 1<<20, // multipart overhead
	})

	app.Use(recover.New())

	origins := "*"
	if config.AppConfig != nil && config.AppConfig.CorsOrigins != "" {
		origins = config.AppConfig.CorsOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Access log lines, skipped in tests to keep output readable
	if config.AppConfig == nil || !strings.EqualFold(config.AppConfig.LogLevel, "error") {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	app.Use(middleware.MetricsMiddleware)
	app.Get("/metrics", middleware.MetricsHandler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	Setup(app)
	return app
}

// Setup mounts the public and admin route groups under /api
func Setup(app *fiber.App) {
	api := app.Group("/api")

	authRoutes.SetupAuthRoutes(api)
	courseRoutes.SetupCourseRoutes(api)
	certificationRoutes.SetupCertificationRoutes(api)
	englishRoutes.SetupEnglishRoutes(api)
	universityRoutes.SetupUniversityRoutes(api)

	admin := api.Group("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)
	adminRoutes.SetupAdminRoutes(admin)
	courseRoutes.SetupAdminCourseRoutes(admin)
	certificationRoutes.SetupAdminCertificationRoutes(admin)
	englishRoutes.SetupAdminEnglishRoutes(admin)
	universityRoutes.SetupAdminUniversityRoutes(admin)
	mediaRoutes.SetupMediaRoutes(admin)
}
