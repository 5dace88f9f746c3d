package models

// Category หมวดหมู่เมนู (tbl_category)
type Category struct {
	ID   uint   `gorm:"column:category_code;primaryKey;autoIncrement"`
	Name string `gorm:"column:category_name;size:100;not null"`
}

func (Category) TableName() string {
	return "tbl_category"
}

// DefaultCategoryNames categories ที่ seed ให้ตอน DB_SEED=true
var DefaultCategoryNames = []string{"Meal", "Dessert", "Beverage", "Side", "Set"}
