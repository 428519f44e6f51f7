// file: internals/features/boq/dto/boq_dto.go
package dto

import (
	m "github.com/jananik96/myERP/internals/features/boq/model"
)

/* =========================================================
   Create Request
========================================================= */

// All three fields are required non-empty; an empty string counts as
// missing (compatibility with the legacy truthiness checks).
type BOQCreateRequest struct {
	Title        string `json:"title" validate:"required"`
	PreparedDate string `json:"prepared_date" validate:"required"`
	Remarks      string `json:"remarks" validate:"required"`
}

// The frontend sometimes posts {"newnorms": {...}} instead of the bare
// payload. Both shapes are accepted.
type BOQCreateEnvelope struct {
	NewNorms *BOQCreateRequest `json:"newnorms"`
	BOQCreateRequest
}

func (e *BOQCreateEnvelope) Payload() *BOQCreateRequest {
	if e.NewNorms != nil {
		return e.NewNorms
	}
	return &e.BOQCreateRequest
}

func (r *BOQCreateRequest) ToModel() m.BOQModel {
	return m.BOQModel{
		Title:        &r.Title,
		PreparedDate: &r.PreparedDate,
		Remarks:      &r.Remarks,
	}
}

/* =========================================================
   Update Request (full replace)
========================================================= */

type BOQUpdateRequest struct {
	Title        *string `json:"title"`
	PreparedDate *string `json:"prepared_date"`
	Remarks      *string `json:"remarks"`
}

// Columns builds the full-replace update map: every column is set, absent
// or empty fields become NULL. PUT is not a patch.
func (r *BOQUpdateRequest) Columns() map[string]interface{} {
	return map[string]interface{}{
		"title":         textOrNull(r.Title),
		"prepared_date": textOrNull(r.PreparedDate),
		"remarks":       textOrNull(r.Remarks),
	}
}

func textOrNull(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
