package model

// BOQModel maps cerpschema.boqs. The text/date columns are nullable in the
// schema; presence on create is enforced at the controller.
type BOQModel struct {
	BoqID        uint    `json:"boq_id" gorm:"column:boq_id;primaryKey"`
	Title        *string `json:"title" gorm:"column:title"`
	PreparedDate *string `json:"prepared_date" gorm:"column:prepared_date;type:date"`
	Remarks      *string `json:"remarks" gorm:"column:remarks"`
}

func (BOQModel) TableName() string {
	return "cerpschema.boqs"
}
