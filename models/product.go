package models

import "gorm.io/gorm"

// Catalog category, maintained by administrators.
type ProductType struct {
	gorm.Model
	Name string `gorm:"type:varchar(64);not null"`
}

// A purchasable item. Price is stored in minor currency units (grosz),
// Kcal is per 100 g.
type Product struct {
	gorm.Model
	Name   string `gorm:"type:varchar(64);not null"`
	Price  int64  `gorm:"not null"`
	Kcal   int    `gorm:"not null"`
	TypeID uint   `gorm:"not null"`
	Type   ProductType
}
