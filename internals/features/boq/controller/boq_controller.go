// file: internals/features/boq/controller/boq_controller.go
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

type BOQController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewBOQController(db *gorm.DB) *BOQController {
	return &BOQController{DB: db, validate: validator.New()}
}

// GET /api/boq
func (ctrl *BOQController) GetAll(c *fiber.Ctx) error {
	var boqs []model.BOQModel
	if err := ctrl.DB.Find(&boqs).Error; err != nil {
		log.Printf("❌ Error fetching BOQs: %v", err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(boqs)
}

// GET /api/boq/:id
func (ctrl *BOQController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var boq model.BOQModel
	if err := ctrl.DB.Where("boq_id = ?", id).First(&boq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "BOQ not found")
		}
		log.Printf("❌ Error fetching BOQ %s: %v", id, err)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(boq)
}

// POST /api/boq/add
func (ctrl *BOQController) Create(c *fiber.Ctx) error {
	var envelope dto.BOQCreateEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return helper.Failure(c, http.StatusBadRequest, "Invalid payload")
	}
	payload := envelope.Payload()

	if err := ctrl.validate.Struct(payload); err != nil {
		return helper.Failure(c, http.StatusBadRequest, "Missing required fields")
	}

	boq := payload.ToModel()
	if err := ctrl.DB.Create(&boq).Error; err != nil {
		log.Printf("❌ Error inserting BOQ: %v", err)
		return helper.Failure(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.Created(c, boq)
}

// PUT /api/boq/:id — full replace: absent fields are stored as NULL,
// not left unchanged.
func (ctrl *BOQController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.Error(c, http.StatusBadRequest, "Invalid or missing BOQ ID")
	}

	var req dto.BOQUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}

	var boq model.BOQModel
	result := ctrl.DB.Model(&boq).
		Clauses(clause.Returning{}).
		Where("boq_id = ?", id).
		Updates(req.Columns())
	if result.Error != nil {
		log.Printf("❌ Error updating BOQ %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "BOQ not found")
	}
	return c.JSON(boq)
}

// DELETE /api/boq/:id — returns the deleted row's snapshot.
func (ctrl *BOQController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var boq model.BOQModel
	result := ctrl.DB.
		Clauses(clause.Returning{}).
		Where("boq_id = ?", id).
		Delete(&boq)
	if result.Error != nil {
		log.Printf("❌ Error deleting BOQ %s: %v", id, result.Error)
		return helper.Error(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if result.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "BOQ not found")
	}

	return c.JSON(fiber.Map{
		"message":    "BOQ deleted successfully",
		"deletedBOQ": boq,
	})
}
