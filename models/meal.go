package models

import "gorm.io/gorm"

// Diet type shared by meals and plans.
const (
	TypeMeat = iota + 1
	TypeVegetarian
	TypeVegan
)

// A named recipe owned by a single user.
type Meal struct {
	gorm.Model
	Name     string `gorm:"type:varchar(64);not null"`
	UserID   uint   // FK → users.id, owner
	Recipe   string `gorm:"type:text"`
	Type     int    // TypeMeat | TypeVegetarian | TypeVegan
	Products []MealProduct
}

// Membership of one product in one meal, with its gram quantity.
// Grams defaults to 0 until set explicitly.
type MealProduct struct {
	gorm.Model
	MealID    uint `gorm:"index"`
	ProductID uint
	Product   Product
	Grams     int `gorm:"default:0"`
}
