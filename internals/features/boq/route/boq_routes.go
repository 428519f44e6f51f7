// file: internals/features/boq/route/boq_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	boqController "github.com/jananik96/myERP/internals/features/boq/controller"
)

// BOQRoutes mounts /boq, /boqcatagory and /boqitem under the given router
// (normally /api). "/add" is registered before "/:id" so it wins the match.
func BOQRoutes(r fiber.Router, db *gorm.DB) {
	boqCtl := boqController.NewBOQController(db)
	boq := r.Group("/boq")
	{
		boq.Get("/", boqCtl.GetAll)
		boq.Post("/add", boqCtl.Create)
		boq.Get("/:id", boqCtl.GetByID)
		boq.Put("/:id", boqCtl.Update)
		boq.Delete("/:id", boqCtl.Delete)
	}

	// "boqcatagory" spelling is what the frontend calls, kept as-is
	catCtl := boqController.NewBOQCategoryController(db)
	cat := r.Group("/boqcatagory")
	{
		cat.Get("/", catCtl.GetAll)
		cat.Post("/add", catCtl.Create)
		cat.Get("/:id", catCtl.GetByID)
		cat.Put("/:id", catCtl.Update)
		cat.Delete("/:id", catCtl.Delete)
	}

	itemCtl := boqController.NewBOQItemController(db)
	item := r.Group("/boqitem")
	{
		item.Get("/", itemCtl.GetAll)
		item.Post("/", itemCtl.Create)
		item.Get("/:id", itemCtl.GetByID)
		item.Put("/:id", itemCtl.Update)
		item.Delete("/:id", itemCtl.Delete)
	}
}
