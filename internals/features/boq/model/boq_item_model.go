package model

import "time"

// BOQItemModel maps cerpschema.boq_items. The amount column is literally
// "Amount" (quoted, capital A) in the schema. Amount is always derived from
// quantity * unit_price at write time, never taken from the caller.
// Timestamp tracking is disabled: the controllers set both columns
// themselves so update keeps full-replace semantics.
type BOQItemModel struct {
	BoqItemID     uint      `json:"boq_item_id" gorm:"column:boq_item_id;primaryKey"`
	BoqID         *int64    `json:"boq_id" gorm:"column:boq_id"`
	BoqCategoryID *int64    `json:"boq_category_id" gorm:"column:boq_category_id"`
	NormID        *int64    `json:"norm_id" gorm:"column:norm_id"`
	Unit          *string   `json:"unit" gorm:"column:unit"`
	Quantity      float64   `json:"quantity" gorm:"column:quantity"`
	Wastage       float64   `json:"wastage" gorm:"column:wastage"`
	UnitPrice     float64   `json:"unit_price" gorm:"column:unit_price"`
	Amount        float64   `json:"amount" gorm:"column:Amount"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime:false"`
}

func (BOQItemModel) TableName() string {
	return "cerpschema.boq_items"
}
