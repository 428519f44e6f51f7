package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jananik96/myERP/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Order matters:
// recovery first so a panic anywhere below still yields a 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
