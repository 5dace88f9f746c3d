package models

import "gorm.io/gorm"

// Orderable flag เก็บเป็นตัวอักษรเดียว Y/N ตาม schema เดิม ไม่ใช่ boolean
const (
	OrderableYes = "Y"
	OrderableNo  = "N"
)

// Menu เมนูอาหาร (tbl_menu)
type Menu struct {
	ID          uint    `gorm:"column:menu_code;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:menu_name;size:100;not null"`
	Price       int     `gorm:"column:menu_price;not null"`
	Description *string `gorm:"column:menu_description;size:1000"`
	Orderable   string  `gorm:"column:menu_orderable;size:1;not null;default:Y"`
	CategoryID  *uint   `gorm:"column:category_code;index"`
	ImageURL    *string `gorm:"column:menu_image_url;size:500"`
	Stock       int     `gorm:"column:menu_stock;not null;default:0"`

	// Relations
	// RESTRICT: ลบ category ที่ยังมีเมนูอ้างอิงอยู่ไม่ได้
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Menu) TableName() string {
	return "tbl_menu"
}

// BeforeCreate ใส่ค่า default ของ orderable ถ้ายังว่าง
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.Orderable == "" {
		m.Orderable = OrderableYes
	}
	return nil
}

// IsOrderable true ถ้าเมนูนี้แสดงในรายการที่ลูกค้าสั่งได้
func (m *Menu) IsOrderable() bool {
	return m.Orderable == OrderableYes
}

// HasImage true ถ้ามีรูปผูกอยู่
func (m *Menu) HasImage() bool {
	return m.ImageURL != nil && *m.ImageURL != ""
}
