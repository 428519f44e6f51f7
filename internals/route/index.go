// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	boqRoute "github.com/jananik96/myERP/internals/features/boq/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the myERP BOQ API!")
	})

	api := app.Group("/api")

	log.Println("[INFO] Mounting BOQ routes...")
	boqRoute.BOQRoutes(api, db)
}
