// file: internals/features/boq/controller/boq_item_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jananik96/myERP/internals/features/boq/dto"
	"github.com/jananik96/myERP/internals/features/boq/model"
	helper "github.com/jananik96/myERP/internals/helpers"
)

type BOQItemController struct {
	DB *gorm.DB
}

func NewBOQItemController(db *gorm.DB) *BOQItemController {
	return &BOQItemController{DB: db}
}

// GET /api/boqitem
func (ctrl *BOQItemController) GetAll(c *fiber.Ctx) error {
	var items []model.BOQItemModel
	if err := ctrl.DB.Order("boq_item_id ASC").Find(&items).Error; err != nil {
		log.Printf("❌ Error fetching BOQ items: %v", err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(items)
}

// GET /api/boqitem/:id
func (ctrl *BOQItemController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.BOQItemModel
	if err := ctrl.DB.Where("boq_item_id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "BOQ item not found")
		}
		log.Printf("❌ Error fetching BOQ item %s: %v", id, err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(item)
}

// POST /api/boqitem — no presence validation: absent fields insert as NULL
// and the storage layer decides. Amount is computed here, wastage defaults
// to 0, both timestamps are set to now.
func (ctrl *BOQItemController) Create(c *fiber.Ctx) error {
	var req dto.BOQItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Failure(c, http.StatusBadRequest, "Invalid payload")
	}

	item := req.ToModel(time.Now())
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Printf("❌ Error inserting BOQ item: %v", err)
		return helper.Failure(c, http.StatusInternalServerError, "Database Error")
	}
	return helper.Created(c, item)
}

// PUT /api/boqitem/:id — full replace: absent references/unit go to NULL,
// absent numerics to 0, amount is recomputed, updated_at always refreshed.
func (ctrl *BOQItemController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.Error(c, http.StatusBadRequest, "Invalid or missing BOQ Item ID")
	}

	var req dto.BOQItemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}

	var item model.BOQItemModel
	result := ctrl.DB.Model(&item).
		Clauses(clause.Returning{}).
		Where("boq_item_id = ?", id).
		Updates(req.Columns(time.Now()))
	if result.Error != nil {
		log.Printf("❌ Error updating BOQ item %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "BOQ item not found")
	}
	return c.JSON(item)
}

// DELETE /api/boqitem/:id
func (ctrl *BOQItemController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.BOQItemModel
	result := ctrl.DB.
		Clauses(clause.Returning{}).
		Where("boq_item_id = ?", id).
		Delete(&item)
	if result.Error != nil {
		log.Printf("❌ Error deleting BOQ item %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Delete failed")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Item not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Deleted",
		"deleted": item,
	})
}
