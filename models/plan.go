package models

import "gorm.io/gorm"

// A diet plan: a named collection of meals scaled to a person count.
type Plan struct {
	gorm.Model
	Name    string `gorm:"type:varchar(64);not null"`
	UserID  uint   // FK → users.id, owner
	Type    int    // TypeMeat | TypeVegetarian | TypeVegan
	Persons int
	Meals   []PlanMeal
}

// Pure association between a plan and a meal. The same meal may appear
// in a plan more than once.
type PlanMeal struct {
	gorm.Model
	PlanID uint `gorm:"index"`
	MealID uint
	Meal   Meal
}
