package models

import "gorm.io/gorm"

// Per-user favourites row, created lazily on the first add.
type FavouritePlan struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null"`
	Plans  []Plan `gorm:"many2many:favourite_plan_plans"`
}

type FavouriteMeal struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null"`
	Meals  []Meal `gorm:"many2many:favourite_meal_meals"`
}
