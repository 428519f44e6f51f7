package model

type BOQCategoryModel struct {
	BoqCategoryID uint    `json:"boq_category_id" gorm:"column:boq_category_id;primaryKey"`
	CategoryName  *string `json:"category_name" gorm:"column:category_name"`
	Description   *string `json:"description" gorm:"column:description"`
}

func (BOQCategoryModel) TableName() string {
	return "cerpschema.boq_categories"
}
