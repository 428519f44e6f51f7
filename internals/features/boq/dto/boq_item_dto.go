// file: internals/features/boq/dto/boq_item_dto.go
package dto

import (
	"time"

	m "github.com/jananik96/myERP/internals/features/boq/model"
)

/* =========================================================
   Create Request
========================================================= */

// No presence validation on create: absent references/unit insert as NULL
// and the storage layer decides. Amount is never accepted from the caller.
type BOQItemCreateRequest struct {
	BoqID         *int64   `json:"boq_id"`
	BoqCategoryID *int64   `json:"boq_category_id"`
	NormID        *int64   `json:"norm_id"`
	Unit          *string  `json:"unit"`
	Quantity      Numeric  `json:"quantity"`
	Wastage       *Numeric `json:"wastage"` // defaults to 0 when absent
	UnitPrice     Numeric  `json:"unit_price"`
}

func (r *BOQItemCreateRequest) ToModel(now time.Time) m.BOQItemModel {
	wastage := 0.0
	if r.Wastage != nil {
		wastage = r.Wastage.Float64()
	}
	return m.BOQItemModel{
		BoqID:         r.BoqID,
		BoqCategoryID: r.BoqCategoryID,
		NormID:        r.NormID,
		Unit:          r.Unit,
		Quantity:      r.Quantity.Float64(),
		Wastage:       wastage,
		UnitPrice:     r.UnitPrice.Float64(),
		Amount:        r.Quantity.Float64() * r.UnitPrice.Float64(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

/* =========================================================
   Update Request (full replace)
========================================================= */

type BOQItemUpdateRequest struct {
	BoqID         *int64     `json:"boq_id"`
	BoqCategoryID *int64     `json:"boq_category_id"`
	NormID        *int64     `json:"norm_id"`
	Unit          *string    `json:"unit"`
	Quantity      *Numeric   `json:"quantity"`
	Wastage       *Numeric   `json:"wastage"`
	UnitPrice     *Numeric   `json:"unit_price"`
	CreatedAt     *time.Time `json:"created_at"`
}

// Columns builds the full-replace update map: absent references/unit go to
// NULL, absent numerics to 0, amount is recomputed from the request's own
// values, created_at is preserved only when the caller supplies it and
// updated_at is always refreshed.
func (r *BOQItemUpdateRequest) Columns(now time.Time) map[string]interface{} {
	quantity := numOrZero(r.Quantity)
	wastage := numOrZero(r.Wastage)
	unitPrice := numOrZero(r.UnitPrice)

	createdAt := now
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}

	return map[string]interface{}{
		"boq_id":          r.BoqID,
		"boq_category_id": r.BoqCategoryID,
		"norm_id":         r.NormID,
		"unit":            textOrNull(r.Unit),
		"quantity":        quantity,
		"wastage":         wastage,
		"unit_price":      unitPrice,
		"Amount":          quantity * unitPrice,
		"created_at":      createdAt,
		"updated_at":      now,
	}
}

func numOrZero(n *Numeric) float64 {
	if n == nil {
		return 0
	}
	return n.Float64()
}
