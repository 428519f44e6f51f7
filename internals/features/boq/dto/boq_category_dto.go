// file: internals/features/boq/dto/boq_category_dto.go
package dto

import (
	m "github.com/jananik96/myERP/internals/features/boq/model"
)

/* =========================================================
   Create / Update Request
========================================================= */

// Category PUT validates presence just like create (unlike BOQ PUT, which
// nulls absent fields), so one request type serves both verbs.
type BOQCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

type BOQCategoryEnvelope struct {
	NewNorms *BOQCategoryRequest `json:"newnorms"`
	BOQCategoryRequest
}

func (e *BOQCategoryEnvelope) Payload() *BOQCategoryRequest {
	if e.NewNorms != nil {
		return e.NewNorms
	}
	return &e.BOQCategoryRequest
}

func (r *BOQCategoryRequest) ToModel() m.BOQCategoryModel {
	return m.BOQCategoryModel{
		CategoryName: &r.CategoryName,
		Description:  &r.Description,
	}
}

func (r *BOQCategoryRequest) Columns() map[string]interface{} {
	return map[string]interface{}{
		"category_name": r.CategoryName,
		"description":   r.Description,
	}
}
