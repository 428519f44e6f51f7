// file: internals/features/boq/controller/boq_category_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jananik96/myERP/internals/features/boq/dto"
	"github.com/jananik96/myERP/internals/features/boq/model"
	helper "github.com/jananik96/myERP/internals/helpers"
)

type BOQCategoryController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewBOQCategoryController(db *gorm.DB) *BOQCategoryController {
	return &BOQCategoryController{DB: db, validate: validator.New()}
}

// GET /api/boqcatagory
func (ctrl *BOQCategoryController) GetAll(c *fiber.Ctx) error {
	var categories []model.BOQCategoryModel
	if err := ctrl.DB.Order("boq_category_id ASC").Find(&categories).Error; err != nil {
		log.Printf("Error fetching BOQ categories: %v", err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(categories)
}

// GET /api/boqcatagory/:id
func (ctrl *BOQCategoryController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.BOQCategoryModel
	if err := ctrl.DB.Where("boq_category_id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "BOQ Category not found")
		}
		log.Printf("Error fetching BOQ category %s: %v", id, err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(category)
}

// POST /api/boqcatagory/add
func (ctrl *BOQCategoryController) Create(c *fiber.Ctx) error {
	var envelope dto.BOQCategoryEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return helper.Failure(c, http.StatusBadRequest, "Invalid payload")
	}
	payload := envelope.Payload()

	if err := ctrl.validate.Struct(payload); err != nil {
		return helper.Failure(c, http.StatusBadRequest, "Missing required fields")
	}

	category := payload.ToModel()
	if err := ctrl.DB.Create(&category).Error; err != nil {
		log.Printf("❌ Error inserting BOQ category: %v", err)
		return helper.Failure(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.Created(c, category)
}

// PUT /api/boqcatagory/:id — unlike BOQ PUT, both fields are required here.
func (ctrl *BOQCategoryController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.BOQCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "category_name and description are required")
	}

	var category model.BOQCategoryModel
	result := ctrl.DB.Model(&category).
		Clauses(clause.Returning{}).
		Where("boq_category_id = ?", id).
		Updates(req.Columns())
	if result.Error != nil {
		log.Printf("Error updating BOQ category %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "BOQ Category not found")
	}
	return c.JSON(category)
}

// DELETE /api/boqcatagory/:id
func (ctrl *BOQCategoryController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.BOQCategoryModel
	result := ctrl.DB.
		Clauses(clause.Returning{}).
		Where("boq_category_id = ?", id).
		Delete(&category)
	if result.Error != nil {
		log.Printf("Error deleting BOQ category %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "BOQ Category not found")
	}

	return c.JSON(fiber.Map{
		"message": "BOQ Category deleted successfully",
		"deleted": category,
	})
}
